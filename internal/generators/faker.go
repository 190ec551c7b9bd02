package generators

import (
	"errors"
)

// Sentence takes an optional word count (default 6).
func Sentence(ctx Context, options []interface{}) (interface{}, error) {
	words, err := intOption(options, 0, 6)
	if err != nil {
		return nil, err
	}
	if words < 1 {
		return nil, errors.New("sentence: word count must be positive")
	}
	return ctx.Faker.Sentence(int(words)), nil
}

// Paragraph takes an optional sentence count (default 3).
func Paragraph(ctx Context, options []interface{}) (interface{}, error) {
	sentences, err := intOption(options, 0, 3)
	if err != nil {
		return nil, err
	}
	if sentences < 1 {
		return nil, errors.New("paragraph: sentence count must be positive")
	}
	return ctx.Faker.Paragraph(1, int(sentences), 8, " "), nil
}

func Word(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.Word(), nil
}

func Letter(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.Letter(), nil
}

func Name(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.Name(), nil
}

func FirstName(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.FirstName(), nil
}

func LastName(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.LastName(), nil
}

func Email(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.Email(), nil
}

func UserName(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.Username(), nil
}

func URL(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.URL(), nil
}

func PhoneNumber(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.Phone(), nil
}

func City(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.City(), nil
}

func Country(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.Country(), nil
}

func Company(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.Company(), nil
}

func IPv4(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.IPv4Address(), nil
}

func IPv6(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.IPv6Address(), nil
}

func MacAddress(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.MacAddress(), nil
}

// Regexify returns a string matching the pattern given as first option.
func Regexify(ctx Context, options []interface{}) (interface{}, error) {
	pattern, err := stringOption(options, 0, "")
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return nil, errors.New("regexify requires a pattern option")
	}
	return ctx.Faker.Regex(pattern), nil
}
