package validate

import (
	"regexp"

	"github.com/shoplite/shoplite-go/internal/model"
)

var (
	usernameRE = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRE    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Register validates user registration requests.
var Register = Ruleset{
	{
		Name:       "username",
		Transforms: []func(string) string{Trim},
		Checks: []func(any) []string{
			LengthBetween(3, 30, "The username must be between 3 and 30 characters."),
			Matches(usernameRE, "The username may only contain letters, numbers, and underscores."),
		},
	},
	{
		Name:       "email",
		Transforms: []func(string) string{Trim, Lower},
		Checks: []func(any) []string{
			Matches(emailRE, "The email must be a valid email address."),
		},
	},
	{
		Name:   "password",
		Checks: []func(any) []string{Password},
	},
}

// Product validates product create and update requests.
var Product = Ruleset{
	{
		Name:       "name",
		Transforms: []func(string) string{Trim},
		Checks: []func(any) []string{
			MaxLength(100, "The name must not exceed 100 characters."),
		},
	},
	{
		Name:       "description",
		Transforms: []func(string) string{Trim},
		Checks: []func(any) []string{
			MaxLength(500, "The description must not exceed 500 characters."),
		},
	},
	{
		Name:   "price",
		Coerce: CoerceFloat("The price must be a number."),
		Checks: []func(any) []string{
			Min(0, "The price must be a non-negative number."),
		},
	},
	{
		Name: "category",
		Checks: []func(any) []string{
			OneOf(model.Categories, "The selected category is invalid."),
		},
	},
	{
		Name:     "quantity",
		Optional: true,
		Coerce:   CoerceInt("The quantity must be an integer."),
		Checks: []func(any) []string{
			MinInt(0, "The quantity must be a non-negative integer."),
		},
	},
}
