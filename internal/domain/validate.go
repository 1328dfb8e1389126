package domain

import (
	"fmt"
	"math"
	"strings"
)

// FieldError describes one rejected field. Raw is the offending value when it
// helps the caller; it is omitted for plain missing-field errors.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Raw     any    `json:"received,omitempty"`
}

// ValidateBriefRequest normalizes an arbitrary decoded JSON payload into a
// BriefRequest. Every field is checked independently so the caller can report
// all problems at once; only a non-object payload short-circuits to a single
// generic error. Errors are data, never panics.
func ValidateBriefRequest(input any) (*BriefRequest, []FieldError) {
	body, ok := input.(map[string]any)
	if !ok {
		return nil, []FieldError{{Field: "body", Message: "Expected a JSON object with required fields."}}
	}

	var errs []FieldError
	req := &BriefRequest{}

	if raw, present := body["bedrooms"]; !present {
		errs = append(errs, missing("bedrooms"))
	} else if n, ok := asInt(raw); !ok || n < 1 || n > 6 {
		errs = append(errs, FieldError{Field: "bedrooms", Message: "Expected an integer between 1 and 6.", Raw: raw})
	} else {
		req.Bedrooms = n
	}

	req.PrimaryUse = requiredEnum(body, "primaryUse", PrimaryUses, &errs)
	req.Staffing = requiredEnum(body, "staffing", StaffingOptions, &errs)
	req.Boh = requiredEnum(body, "boh", BohOptions, &errs)
	req.Stairs = requiredEnum(body, "stairs", StairsOptions, &errs)
	req.Privacy = requiredEnum(body, "privacy", PrivacyOptions, &errs)
	req.IndoorOutdoor = requiredEnum(body, "indoorOutdoor", IndoorOutdoorOptions, &errs)

	if raw, present := body["values"]; !present {
		errs = append(errs, missing("values"))
	} else if items, ok := asStrings(raw); !ok {
		errs = append(errs, FieldError{Field: "values", Message: "Expected an array with up to 10 selections.", Raw: raw})
	} else if len(items) < 1 || len(items) > 10 {
		errs = append(errs, FieldError{Field: "values", Message: "Select between 1 and 10 values."})
	} else if !allIn(items, ValueOptions) {
		errs = append(errs, FieldError{Field: "values", Message: "One or more values are not recognized.", Raw: raw})
	} else {
		req.Values = items
	}

	if raw, present := body["notes"]; present {
		if s, ok := raw.(string); !ok {
			errs = append(errs, FieldError{Field: "notes", Message: "Expected a string.", Raw: raw})
		} else if len([]rune(s)) > 600 {
			errs = append(errs, FieldError{Field: "notes", Message: "Notes must be 600 characters or fewer."})
		} else {
			// Empty after trimming means absent.
			req.Notes = strings.TrimSpace(s)
		}
	}

	if raw, present := body["narrativeSeed"]; present {
		if n, ok := asInt(raw); !ok || n < 0 {
			errs = append(errs, FieldError{Field: "narrativeSeed", Message: "Expected a non-negative integer.", Raw: raw})
		} else {
			req.NarrativeSeed = &n
		}
	}

	req.WhoStays = optionalEnum(body, "whoStays", WhoStaysOptions, &errs)
	req.Pool = optionalEnum(body, "pool", PoolOptions, &errs)
	req.Parking = optionalEnum(body, "parking", ParkingOptions, &errs)

	req.Style = optionalEnumList(body, "style", StyleOptions, 2, "styles", &errs)
	req.MaterialMood = optionalEnumList(body, "materialMood", MaterialMoodOptions, 2, "material moods", &errs)
	req.FlexSpaces = optionalEnumList(body, "flexSpaces", FlexSpaceOptions, 3, "flex spaces", &errs)

	if len(errs) > 0 {
		return nil, errs
	}
	return req, nil
}

func missing(field string) FieldError {
	return FieldError{Field: field, Message: "Required field is missing."}
}

func requiredEnum[T ~string](body map[string]any, field string, options []T, errs *[]FieldError) T {
	raw, present := body[field]
	if !present {
		*errs = append(*errs, missing(field))
		return ""
	}
	v, ok := member(raw, options)
	if !ok {
		*errs = append(*errs, FieldError{
			Field:   field,
			Message: fmt.Sprintf("Expected one of: %s.", joinLiterals(options)),
			Raw:     raw,
		})
		return ""
	}
	return v
}

func optionalEnum[T ~string](body map[string]any, field string, options []T, errs *[]FieldError) T {
	raw, present := body[field]
	if !present {
		return ""
	}
	v, ok := member(raw, options)
	if !ok {
		*errs = append(*errs, FieldError{
			Field:   field,
			Message: fmt.Sprintf("Expected one of: %s.", joinLiterals(options)),
			Raw:     raw,
		})
		return ""
	}
	return v
}

func optionalEnumList[T ~string](body map[string]any, field string, options []T, max int, noun string, errs *[]FieldError) []T {
	raw, present := body[field]
	if !present {
		return nil
	}
	items, ok := asStrings(raw)
	if !ok {
		*errs = append(*errs, FieldError{
			Field:   field,
			Message: fmt.Sprintf("Expected an array with up to %d selections.", max),
			Raw:     raw,
		})
		return nil
	}
	if len(items) > max {
		*errs = append(*errs, FieldError{Field: field, Message: fmt.Sprintf("Select up to %d %s.", max, noun)})
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		v, ok := member(item, options)
		if !ok {
			*errs = append(*errs, FieldError{
				Field:   field,
				Message: fmt.Sprintf("Expected values from: %s.", joinLiterals(options)),
				Raw:     raw,
			})
			return nil
		}
		out = append(out, v)
	}
	return out
}

func member[T ~string](raw any, options []T) (T, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	for _, opt := range options {
		if string(opt) == s {
			return opt, true
		}
	}
	return "", false
}

func allIn(items []string, options []string) bool {
	for _, item := range items {
		found := false
		for _, opt := range options {
			if opt == item {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func joinLiterals[T ~string](options []T) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		parts[i] = string(opt)
	}
	return strings.Join(parts, ", ")
}

// asInt accepts the numeric shapes a decoded JSON payload can carry and
// rejects anything with a fractional part.
func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

func asStrings(raw any) ([]string, bool) {
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
