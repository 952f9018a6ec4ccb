package input

// Date patterns used by the As* helpers. They use single-letter format codes
// ("Y-m-d") that the validator translates to Go layouts.
const (
	DateFormatDate                   = "Y-m-d"
	DateFormatTime                   = "H:i:s"
	DateFormatDateTime               = "Y-m-d H:i:s"
	DateFormatYearMonth              = "Y-m"
	DateFormatMonthDay               = "m-d"
	DateFormatHourMinute             = "H:i"
	DateFormatMinuteSecond           = "i:s"
	DateFormatYear                   = "Y"
	DateFormatMonth                  = "n"
	DateFormatMonthZero              = "m"
	DateFormatMonthName              = "F"
	DateFormatMonthNameShort         = "M"
	DateFormatDay                    = "j"
	DateFormatDayZero                = "d"
	DateFormatHour                   = "G"
	DateFormatHourZero               = "H"
	DateFormatHourTwelveNotation     = "g"
	DateFormatHourTwelveNotationZero = "h"
	DateFormatMinute                 = "i"
	DateFormatSecond                 = "s"
)
