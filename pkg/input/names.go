package input

// Rule names understood by the validator. They double as the suffix of
// message keys ("{key}.{rule}").
const (
	RuleAccepted           = "accepted"
	RuleAcceptedIf         = "accepted_if"
	RuleActiveURL          = "active_url"
	RuleAfter              = "after"
	RuleAfterOrEqual       = "after_or_equal"
	RuleAlpha              = "alpha"
	RuleAlphaDash          = "alpha_dash"
	RuleAlphaNum           = "alpha_num"
	RuleArray              = "array"
	RuleASCII              = "ascii"
	RuleBefore             = "before"
	RuleBeforeOrEqual      = "before_or_equal"
	RuleBetween            = "between"
	RuleBoolean            = "boolean"
	RuleConfirmed          = "confirmed"
	RuleCurrentPassword    = "current_password"
	RuleDate               = "date"
	RuleDateEquals         = "date_equals"
	RuleDateFormat         = "date_format"
	RuleDecimal            = "decimal"
	RuleDeclined           = "declined"
	RuleDeclinedIf         = "declined_if"
	RuleDifferent          = "different"
	RuleDigits             = "digits"
	RuleDigitsBetween      = "digits_between"
	RuleDimensions         = "dimensions"
	RuleDistinct           = "distinct"
	RuleDoesntEndWith      = "doesnt_end_with"
	RuleDoesntStartWith    = "doesnt_start_with"
	RuleEmail              = "email"
	RuleEndsWith           = "ends_with"
	RuleExists             = "exists"
	RuleExtensions         = "extensions"
	RuleFile               = "file"
	RuleFilled             = "filled"
	RuleGt                 = "gt"
	RuleGte                = "gte"
	RuleHexColor           = "hex_color"
	RuleImage              = "image"
	RuleIn                 = "in"
	RuleInArray            = "in_array"
	RuleInteger            = "integer"
	RuleIP                 = "ip"
	RuleIPv4               = "ipv4"
	RuleIPv6               = "ipv6"
	RuleJSON               = "json"
	RuleLowercase          = "lowercase"
	RuleLt                 = "lt"
	RuleLte                = "lte"
	RuleMACAddress         = "mac_address"
	RuleMax                = "max"
	RuleMaxDigits          = "max_digits"
	RuleMimes              = "mimes"
	RuleMimetypes          = "mimetypes"
	RuleMin                = "min"
	RuleMinDigits          = "min_digits"
	RuleMissing            = "missing"
	RuleMissingIf          = "missing_if"
	RuleMissingUnless      = "missing_unless"
	RuleMissingWith        = "missing_with"
	RuleMissingWithAll     = "missing_with_all"
	RuleMissingWithout     = "missing_without"
	RuleMissingWithoutAll  = "missing_without_all"
	RuleMultipleOf         = "multiple_of"
	RuleNotIn              = "not_in"
	RuleNotRegex           = "not_regex"
	RuleNullable           = "nullable"
	RuleNumeric            = "numeric"
	RulePresent            = "present"
	RuleProhibited         = "prohibited"
	RuleProhibitedIf       = "prohibited_if"
	RuleProhibitedUnless   = "prohibited_unless"
	RuleProhibits          = "prohibits"
	RuleRegex              = "regex"
	RuleRequired           = "required"
	RuleRequiredArrayKeys  = "required_array_keys"
	RuleRequiredIf         = "required_if"
	RuleRequiredIfAccepted = "required_if_accepted"
	RuleRequiredUnless     = "required_unless"
	RuleRequiredWith       = "required_with"
	RuleRequiredWithAll    = "required_with_all"
	RuleRequiredWithout    = "required_without"
	RuleRequiredWithoutAll = "required_without_all"
	RuleSame               = "same"
	RuleSize               = "size"
	RuleStartsWith         = "starts_with"
	RuleString             = "string"
	RuleTimezone           = "timezone"
	RuleULID               = "ulid"
	RuleUnique             = "unique"
	RuleUppercase          = "uppercase"
	RuleURL                = "url"
	RuleUUID               = "uuid"
)
