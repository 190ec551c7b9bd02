package generators

import (
	"fmt"
	"time"

	"github.com/mmrzaf/tablefaker/internal/timeutil"
)

const ISO8601Layout = "2006-01-02T15:04:05-0700"

var epoch = time.Unix(0, 0).UTC()

func randomTime(ctx Context) time.Time {
	return ctx.Faker.DateRange(epoch, ctx.Now)
}

func ISO8601(ctx Context, options []interface{}) (interface{}, error) {
	return randomTime(ctx).Format(ISO8601Layout), nil
}

func Date(ctx Context, options []interface{}) (interface{}, error) {
	return randomTime(ctx).Format("2006-01-02"), nil
}

func Time(ctx Context, options []interface{}) (interface{}, error) {
	return randomTime(ctx).Format("15:04:05"), nil
}

func UnixTime(ctx Context, options []interface{}) (interface{}, error) {
	return randomTime(ctx).Unix(), nil
}

// DateTimeBetween takes [start, end] as timestamps, "now", "today" or
// offsets such as "-30d" and "-2 weeks". Defaults are "-30y" and "now".
func DateTimeBetween(ctx Context, options []interface{}) (interface{}, error) {
	startStr, err := stringOption(options, 0, "-30y")
	if err != nil {
		return nil, err
	}
	endStr, err := stringOption(options, 1, "now")
	if err != nil {
		return nil, err
	}

	start, err := timeutil.Resolve(startStr, ctx.Now)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := timeutil.Resolve(endStr, ctx.Now)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end %s is before start %s", endStr, startStr)
	}

	return ctx.Faker.DateRange(start, end).Format(ISO8601Layout), nil
}
