package generators

import "errors"

// RandomNormal takes [mean, std].
func RandomNormal(ctx Context, options []interface{}) (interface{}, error) {
	if len(options) < 2 {
		return nil, errors.New("randomNormal requires mean and std options")
	}
	mean, err := floatOption(options, 0, 0)
	if err != nil {
		return nil, err
	}
	std, err := floatOption(options, 1, 1)
	if err != nil {
		return nil, err
	}
	if std < 0 {
		return nil, errors.New("randomNormal: std must not be negative")
	}
	return ctx.Faker.Rand.NormFloat64()*std + mean, nil
}
