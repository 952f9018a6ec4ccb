package input

import "strconv"

// File requires an uploaded file.
func (i *Input) File(msg ...string) *Input {
	return i.addRuleAndMessage(RuleFile, msg)
}

// Image requires an uploaded jpg, jpeg, png, bmp, gif, svg or webp file.
func (i *Input) Image(msg ...string) *Input {
	return i.addRuleAndMessage(RuleImage, msg)
}

// Mimes restricts uploads to the MIME types matching the given extensions.
func (i *Input) Mimes(extensions []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMimes, toAny(extensions), msg)
}

// Mimetypes restricts uploads to the given MIME types.
func (i *Input) Mimetypes(mimetypes []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMimetypes, toAny(mimetypes), msg)
}

// Extensions restricts the client supplied file extension.
func (i *Input) Extensions(extensions []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleExtensions, toAny(extensions), msg)
}

// Dimensions constrains image size. Zero fields are not emitted.
type Dimensions struct {
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int
	// Ratio is width divided by height, e.g. "3/2" or "1.5".
	Ratio string
}

func (d Dimensions) params() []any {
	var out []any
	add := func(name string, v int) {
		if v > 0 {
			out = append(out, name+"="+strconv.Itoa(v))
		}
	}
	add("width", d.Width)
	add("height", d.Height)
	add("min_width", d.MinWidth)
	add("min_height", d.MinHeight)
	add("max_width", d.MaxWidth)
	add("max_height", d.MaxHeight)
	if d.Ratio != "" {
		out = append(out, "ratio="+d.Ratio)
	}
	return out
}

// Dimensions adds "dimensions:width=..,min_height=..". An empty constraint is a no-op.
func (i *Input) Dimensions(d Dimensions, msg ...string) *Input {
	params := d.params()
	if len(params) == 0 {
		return i
	}
	return i.addRuleValuesAndMessage(RuleDimensions, params, msg)
}
