package company

import (
	"github.com/bangasho83/hummane/internal/validate"
)

// Validate normalizes a company payload. Working hours are validated as a
// nested composite: failures report dot-joined paths such as
// workingHours.monday.start.
func Validate(input Input) (Input, validate.Errors) {
	c := validate.NewChecker()

	out := Input{
		Name:     c.String("name", input.Name, 2, 150),
		Industry: c.String("industry", input.Industry, 2, 100),
		Size:     c.Enum("size", input.Size, Sizes, true),
		Currency: c.String("currency", input.Currency, 0, 10),
		Timezone: c.String("timezone", input.Timezone, 0, 64),
	}

	if len(input.WorkingHours) > 0 {
		out.WorkingHours = make(map[string]DayHours, len(input.WorkingHours))
		for day, hours := range input.WorkingHours {
			base := validate.Join("workingHours", day)
			if !isWeekday(day) {
				c.Add(base, "must be a lowercase weekday name")
				continue
			}
			normalized := DayHours{Open: hours.Open}
			if hours.Open {
				normalized.Start = c.ClockTime(validate.Join(base, "start"), hours.Start, true)
				normalized.End = c.ClockTime(validate.Join(base, "end"), hours.End, true)
				if normalized.Start != "" && normalized.End != "" && normalized.End <= normalized.Start {
					c.Add(validate.Join(base, "end"), "must be after start")
				}
			}
			out.WorkingHours[day] = normalized
		}
	}

	return out, c.Errors()
}

func isWeekday(day string) bool {
	for _, candidate := range Weekdays {
		if day == candidate {
			return true
		}
	}
	return false
}
