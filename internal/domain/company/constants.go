package company

// Sizes is the closed set of company size bands.
var Sizes = []string{"1-10", "11-50", "51-200", "201-500", "500+"}

// Weekdays is the allowed key set of the working-hours map, in week order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
