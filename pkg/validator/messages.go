package validator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formrequest/pkg/input"
)

// defaultMessages are used when neither a custom message nor a translation exists.
var defaultMessages = map[string]string{
	"accepted":             "The :attribute field must be accepted.",
	"accepted_if":          "The :attribute field must be accepted when :other is :value.",
	"active_url":           "The :attribute field must be a valid URL.",
	"after":                "The :attribute field must be a date after :date.",
	"after_or_equal":       "The :attribute field must be a date after or equal to :date.",
	"alpha":                "The :attribute field must only contain letters.",
	"alpha_dash":           "The :attribute field must only contain letters, numbers, dashes, and underscores.",
	"alpha_num":            "The :attribute field must only contain letters and numbers.",
	"array":                "The :attribute field must be an array.",
	"ascii":                "The :attribute field must only contain single-byte alphanumeric characters and symbols.",
	"before":               "The :attribute field must be a date before :date.",
	"before_or_equal":      "The :attribute field must be a date before or equal to :date.",
	"between.array":        "The :attribute field must have between :min and :max items.",
	"between.file":         "The :attribute field must be between :min and :max kilobytes.",
	"between.numeric":      "The :attribute field must be between :min and :max.",
	"between.string":       "The :attribute field must be between :min and :max characters.",
	"boolean":              "The :attribute field must be true or false.",
	"confirmed":            "The :attribute field confirmation does not match.",
	"current_password":     "The password is incorrect.",
	"date":                 "The :attribute field must be a valid date.",
	"date_equals":          "The :attribute field must be a date equal to :date.",
	"date_format":          "The :attribute field must match the format :format.",
	"decimal":              "The :attribute field must have :decimal decimal places.",
	"declined":             "The :attribute field must be declined.",
	"declined_if":          "The :attribute field must be declined when :other is :value.",
	"different":            "The :attribute field and :other must be different.",
	"digits":               "The :attribute field must be :digits digits.",
	"digits_between":       "The :attribute field must be between :min and :max digits.",
	"dimensions":           "The :attribute field has invalid image dimensions.",
	"distinct":             "The :attribute field has a duplicate value.",
	"doesnt_end_with":      "The :attribute field must not end with one of the following: :values.",
	"doesnt_start_with":    "The :attribute field must not start with one of the following: :values.",
	"email":                "The :attribute field must be a valid email address.",
	"ends_with":            "The :attribute field must end with one of the following: :values.",
	"exists":               "The selected :attribute is invalid.",
	"extensions":           "The :attribute field must have one of the following extensions: :values.",
	"file":                 "The :attribute field must be a file.",
	"filled":               "The :attribute field must have a value.",
	"gt.array":             "The :attribute field must have more than :value items.",
	"gt.file":              "The :attribute field must be greater than :value kilobytes.",
	"gt.numeric":           "The :attribute field must be greater than :value.",
	"gt.string":            "The :attribute field must be greater than :value characters.",
	"gte.array":            "The :attribute field must have :value items or more.",
	"gte.file":             "The :attribute field must be greater than or equal to :value kilobytes.",
	"gte.numeric":          "The :attribute field must be greater than or equal to :value.",
	"gte.string":           "The :attribute field must be greater than or equal to :value characters.",
	"hex_color":            "The :attribute field must be a valid hexadecimal color.",
	"image":                "The :attribute field must be an image.",
	"in":                   "The selected :attribute is invalid.",
	"in_array":             "The :attribute field must exist in :other.",
	"integer":              "The :attribute field must be an integer.",
	"ip":                   "The :attribute field must be a valid IP address.",
	"ipv4":                 "The :attribute field must be a valid IPv4 address.",
	"ipv6":                 "The :attribute field must be a valid IPv6 address.",
	"json":                 "The :attribute field must be a valid JSON string.",
	"lowercase":            "The :attribute field must be lowercase.",
	"lt.array":             "The :attribute field must have less than :value items.",
	"lt.file":              "The :attribute field must be less than :value kilobytes.",
	"lt.numeric":           "The :attribute field must be less than :value.",
	"lt.string":            "The :attribute field must be less than :value characters.",
	"lte.array":            "The :attribute field must not have more than :value items.",
	"lte.file":             "The :attribute field must be less than or equal to :value kilobytes.",
	"lte.numeric":          "The :attribute field must be less than or equal to :value.",
	"lte.string":           "The :attribute field must be less than or equal to :value characters.",
	"mac_address":          "The :attribute field must be a valid MAC address.",
	"max.array":            "The :attribute field must not have more than :max items.",
	"max.file":             "The :attribute field must not be greater than :max kilobytes.",
	"max.numeric":          "The :attribute field must not be greater than :max.",
	"max.string":           "The :attribute field must not be greater than :max characters.",
	"max_digits":           "The :attribute field must not have more than :max digits.",
	"mimes":                "The :attribute field must be a file of type: :values.",
	"mimetypes":            "The :attribute field must be a file of type: :values.",
	"min.array":            "The :attribute field must have at least :min items.",
	"min.file":             "The :attribute field must be at least :min kilobytes.",
	"min.numeric":          "The :attribute field must be at least :min.",
	"min.string":           "The :attribute field must be at least :min characters.",
	"min_digits":           "The :attribute field must have at least :min digits.",
	"missing":              "The :attribute field must be missing.",
	"missing_if":           "The :attribute field must be missing when :other is :value.",
	"missing_unless":       "The :attribute field must be missing unless :other is :value.",
	"missing_with":         "The :attribute field must be missing when :values is present.",
	"missing_with_all":     "The :attribute field must be missing when :values are present.",
	"missing_without":      "The :attribute field must be missing when :values is not present.",
	"missing_without_all":  "The :attribute field must be missing when none of :values are present.",
	"multiple_of":          "The :attribute field must be a multiple of :value.",
	"not_in":               "The selected :attribute is invalid.",
	"not_regex":            "The :attribute field format is invalid.",
	"numeric":              "The :attribute field must be a number.",
	"present":              "The :attribute field must be present.",
	"prohibited":           "The :attribute field is prohibited.",
	"prohibited_if":        "The :attribute field is prohibited when :other is :value.",
	"prohibited_unless":    "The :attribute field is prohibited unless :other is in :values.",
	"prohibits":            "The :attribute field prohibits :other from being present.",
	"regex":                "The :attribute field format is invalid.",
	"required":             "The :attribute field is required.",
	"required_array_keys":  "The :attribute field must contain entries for: :values.",
	"required_if":          "The :attribute field is required when :other is :value.",
	"required_if_accepted": "The :attribute field is required when :other is accepted.",
	"required_unless":      "The :attribute field is required unless :other is in :values.",
	"required_with":        "The :attribute field is required when :values is present.",
	"required_with_all":    "The :attribute field is required when :values are present.",
	"required_without":     "The :attribute field is required when :values is not present.",
	"required_without_all": "The :attribute field is required when none of :values are present.",
	"same":                 "The :attribute field must match :other.",
	"size.array":           "The :attribute field must contain :size items.",
	"size.file":            "The :attribute field must be :size kilobytes.",
	"size.numeric":         "The :attribute field must be :size.",
	"size.string":          "The :attribute field must be :size characters.",
	"starts_with":          "The :attribute field must start with one of the following: :values.",
	"string":               "The :attribute field must be a string.",
	"timezone":             "The :attribute field must be a valid timezone.",
	"ulid":                 "The :attribute field must be a valid ULID.",
	"unique":               "The :attribute has already been taken.",
	"uppercase":            "The :attribute field must be uppercase.",
	"url":                  "The :attribute field must be a valid URL.",
	"uuid":                 "The :attribute field must be a valid UUID.",
}

// sizedRules pick their message by the kind of value measured.
var sizedRules = map[string]bool{
	input.RuleSize:    true,
	input.RuleMin:     true,
	input.RuleMax:     true,
	input.RuleBetween: true,
	input.RuleGt:      true,
	input.RuleGte:     true,
	input.RuleLt:      true,
	input.RuleLte:     true,
}

const fallbackMessage = "The :attribute field is invalid."

func (e *Engine) failure(f *field, rule input.Rule, params []string) ValidationError {
	name := rule.Name()
	key := name
	if sizedRules[name] {
		key = name + "." + sizeKind(f.value, f.numeric)
	}

	replacements := f.replacements(name, params)
	return ValidationError{
		Field:             f.key,
		Rule:              name,
		Message:           replace(f.template(rule, key), replacements),
		TranslationKey:    "validation." + key,
		TranslationValues: toValues(replacements),
	}
}

// template resolves the message: custom, then translated, then built-in.
func (f *field) template(rule input.Rule, key string) string {
	if msg, ok := f.set.Message(f.key, rule.Name()); ok {
		return msg
	}
	if f.tr != nil {
		translationKey := "validation." + key
		if msg := f.tr.Translate(translationKey); msg != translationKey {
			return msg
		}
	}
	if msg, ok := defaultMessages[key]; ok {
		return msg
	}
	return fallbackMessage
}

func (f *field) replacements(rule string, params []string) map[string]string {
	r := map[string]string{"attribute": f.attribute(f.key)}

	first := func() string {
		if len(params) > 0 {
			return params[0]
		}
		return ""
	}
	rest := func() []string {
		if len(params) > 1 {
			return params[1:]
		}
		return nil
	}

	switch rule {
	case input.RuleMin, input.RuleMaxDigits, input.RuleMinDigits:
		r["min"], r["max"] = first(), first()
	case input.RuleMax:
		r["max"] = first()
	case input.RuleSize:
		r["size"] = first()
	case input.RuleBetween, input.RuleDigitsBetween:
		r["min"] = first()
		if len(params) > 1 {
			r["max"] = params[1]
		}
	case input.RuleDigits:
		r["digits"] = first()
	case input.RuleDecimal:
		r["decimal"] = strings.Join(params, "-")
	case input.RuleDateFormat:
		r["format"] = strings.Join(params, ",")
	case input.RuleAfter, input.RuleAfterOrEqual, input.RuleBefore, input.RuleBeforeOrEqual, input.RuleDateEquals:
		r["date"] = f.otherOrLiteral(first())
	case input.RuleSame, input.RuleDifferent, input.RuleInArray:
		r["other"] = f.attribute(first())
	case input.RuleConfirmed:
		r["other"] = f.attribute(f.key + "_confirmation")
	case input.RuleGt, input.RuleGte, input.RuleLt, input.RuleLte:
		r["value"] = f.sizeParam(first())
	case input.RuleMultipleOf:
		r["value"] = first()
	case input.RuleRequiredIf, input.RuleRequiredUnless, input.RuleMissingIf, input.RuleMissingUnless,
		input.RuleProhibitedIf, input.RuleProhibitedUnless, input.RuleAcceptedIf, input.RuleDeclinedIf:
		r["other"] = f.attribute(first())
		other, _ := f.data.Bind(first())
		r["value"] = paramString(other)
		r["values"] = strings.Join(rest(), ", ")
	case input.RuleRequiredIfAccepted, input.RuleProhibits:
		r["other"] = f.attributes(params)
	case input.RuleRequiredWith, input.RuleRequiredWithAll, input.RuleRequiredWithout, input.RuleRequiredWithoutAll,
		input.RuleMissingWith, input.RuleMissingWithAll, input.RuleMissingWithout, input.RuleMissingWithoutAll:
		r["values"] = f.attributes(params)
	default:
		r["values"] = strings.Join(params, ", ")
	}
	return r
}

// attribute returns the label of key: its declared attribute name, or the
// key with underscores turned into spaces.
func (f *field) attribute(key string) string {
	if name, ok := f.set.Attribute(key); ok && name != "" {
		return name
	}
	if f.tr != nil {
		translationKey := "validation.attributes." + key
		if name := f.tr.Translate(translationKey); name != translationKey {
			return name
		}
	}
	return strings.ReplaceAll(key, "_", " ")
}

func (f *field) attributes(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, f.attribute(k))
	}
	return strings.Join(names, " / ")
}

func (f *field) otherOrLiteral(param string) string {
	if f.data.Has(param) {
		return f.attribute(param)
	}
	return param
}

func (f *field) sizeParam(param string) string {
	if other, ok := f.data.Bind(param); ok {
		if size, ok := sizeOf(other, f.numeric); ok {
			return strconv.FormatFloat(size, 'f', -1, 64)
		}
	}
	return param
}

// replace substitutes ":name" placeholders, longest names first so that
// ":values" is not clobbered by ":value".
func replace(msg string, r map[string]string) string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, ":"+name, r[name])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

func toValues(r map[string]string) map[string]any {
	out := make(map[string]any, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
