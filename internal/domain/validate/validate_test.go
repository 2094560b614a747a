package validate_test

import (
	"context"
	"testing"

	dedupe "github.com/okian/scout/internal/domain/dedupe"
	model "github.com/okian/scout/internal/domain/model"
	validate "github.com/okian/scout/internal/domain/validate"
	. "github.com/smartystreets/goconvey/convey"
)

// goodCandidate returns a candidate that passes every stage.
func goodCandidate() model.Candidate {
	return model.Candidate{
		Name:        "Jane Doe",
		Email:       "jane@gmail.com",
		ProfileLink: "https://www.twine.net/profile/jane",
		Role:        model.RoleUGCCreator,
	}
}

func reasonOf(err error) validate.Reason {
	reason, _ := validate.ReasonOf(err)
	return reason
}

func TestValidatePipeline(t *testing.T) {
	Convey("Given a validator with a fresh seen set", t, func() {
		ctx := context.Background()
		seen := dedupe.NewInMemorySeenSet()
		v := validate.New(seen)

		Convey("When validating a clean individual profile", func() {
			p, err := v.Validate(ctx, goodCandidate())

			Convey("Then it should be accepted with a normalized email", func() {
				So(err, ShouldBeNil)
				So(p.Name, ShouldEqual, "Jane Doe")
				So(p.Email, ShouldEqual, "jane@gmail.com")
				So(p.Role, ShouldEqual, model.RoleUGCCreator)
				So(seen.Size(), ShouldEqual, 1)
			})
		})

		Convey("When the email is mixed case", func() {
			c := goodCandidate()
			c.Email = "Jane.Doe@Gmail.COM"
			p, err := v.Validate(ctx, c)

			Convey("Then acceptance lowercases it", func() {
				So(err, ShouldBeNil)
				So(p.Email, ShouldEqual, "jane.doe@gmail.com")
			})
		})

		Convey("When the email is empty or malformed", func() {
			for _, email := range []string{
				"", "not-an-email", "jane@", "@gmail.com",
				"jane@gmail", "jane doe@gmail.com", `"quoted"@gmail.com`,
				"jane@[192.168.0.1]",
			} {
				c := goodCandidate()
				c.Email = email
				_, err := v.Validate(ctx, c)

				So(err, ShouldNotBeNil)
				So(reasonOf(err), ShouldEqual, validate.ReasonInvalidEmail)
			}

			Convey("Then no rejected email reaches the seen set", func() {
				So(seen.Size(), ShouldEqual, 0)
			})
		})

		Convey("When the email is placeholder data", func() {
			Convey("And the domain is reserved", func() {
				c := goodCandidate()
				c.Email = "JANE@Example.com"
				_, err := v.Validate(ctx, c)

				Convey("Then it is rejected regardless of otherwise-valid shape", func() {
					So(reasonOf(err), ShouldEqual, validate.ReasonPlaceholderData)
				})
			})

			Convey("And the local part carries a marker", func() {
				for _, email := range []string{
					"test@gmail.com", "demo.account@gmail.com", "placeholder@outlook.com",
				} {
					c := goodCandidate()
					c.Email = email
					_, err := v.Validate(ctx, c)
					So(reasonOf(err), ShouldEqual, validate.ReasonPlaceholderData)
				}
			})

			Convey("Then nothing was recorded in the seen set", func() {
				So(seen.Size(), ShouldEqual, 0)
			})
		})

		Convey("When the name looks like an organization", func() {
			cases := map[string]string{
				"Acme Studio":          "contact@acme.co",
				"The Agency Group":     "info@agencygroup.co",
				"Bright Media LLC":     "hello@brightco.io",
				"Pixel Productions":    "mail@pixelpro.co",
				"The Collective":       "team2@collectiveish.co",
				"Northstar Labs":       "hi@northstar.dev",
			}
			for name, email := range cases {
				c := goodCandidate()
				c.Name = name
				c.Email = email
				_, err := v.Validate(ctx, c)

				So(err, ShouldNotBeNil)
				So(reasonOf(err), ShouldEqual, validate.ReasonNotAnIndividual)
			}
		})

		Convey("When the name is an individual despite token-like substrings", func() {
			// "inc" inside "Vincent" must not trip the word-level heuristic.
			for _, name := range []string{"Vincent Price", "Amedia Jones", "Theodore Park", "the lowercase person"} {
				c := goodCandidate()
				c.Name = name
				c.Email = "x." + c.Email
				_, err := v.Validate(ctx, c)
				So(reasonOf(err), ShouldNotEqual, validate.ReasonNotAnIndividual)
			}
		})

		Convey("When the name is empty or too short", func() {
			for _, name := range []string{"", " ", "J"} {
				c := goodCandidate()
				c.Name = name
				_, err := v.Validate(ctx, c)
				So(reasonOf(err), ShouldEqual, validate.ReasonNotAnIndividual)
			}
		})

		Convey("When the profile link is off-shape", func() {
			for _, link := range []string{
				"",
				"https://www.twine.net/jane",         // missing /profile/ prefix
				"https://www.twine.net/profile/",     // empty slug
				"https://elsewhere.example/profile/jane", // wrong host
				"ftp://www.twine.net/profile/jane",   // wrong scheme
				"/profile/jane",                      // relative
			} {
				c := goodCandidate()
				c.ProfileLink = link
				_, err := v.Validate(ctx, c)

				So(reasonOf(err), ShouldEqual, validate.ReasonInvalidProfileURL)
			}

			Convey("Then URL rejections never touch the seen set", func() {
				So(seen.Size(), ShouldEqual, 0)
			})
		})

		Convey("When two candidates share a normalized email", func() {
			first := goodCandidate()
			second := goodCandidate()
			second.Email = "JANE@GMAIL.COM"
			second.ProfileLink = "https://www.twine.net/profile/jane-2"

			_, firstErr := v.Validate(ctx, first)
			_, secondErr := v.Validate(ctx, second)

			Convey("Then the first is accepted and the second rejected as duplicate", func() {
				So(firstErr, ShouldBeNil)
				So(reasonOf(secondErr), ShouldEqual, validate.ReasonDuplicateEmail)
				So(seen.Size(), ShouldEqual, 1)
			})

			Convey("And re-validating an already-lowercase accepted email is idempotent", func() {
				_, err := v.Validate(ctx, goodCandidate())
				So(reasonOf(err), ShouldEqual, validate.ReasonDuplicateEmail)
			})
		})

		Convey("When a candidate fails several stages at once", func() {
			c := model.Candidate{
				Name:        "Acme Studio",
				Email:       "not-an-email",
				ProfileLink: "https://www.twine.net/nowhere",
				Role:        model.RoleVideoEditor,
			}
			_, err := v.Validate(ctx, c)

			Convey("Then the first failing stage wins", func() {
				So(reasonOf(err), ShouldEqual, validate.ReasonInvalidEmail)
			})
		})
	})
}

func TestValidateSeenSetInvariant(t *testing.T) {
	Convey("Given a run over a mixed candidate batch", t, func() {
		ctx := context.Background()
		seen := dedupe.NewInMemorySeenSet()
		v := validate.New(seen)

		batch := []model.Candidate{
			goodCandidate(),
			{Name: "John Roe", Email: "john@outlook.com", ProfileLink: "https://www.twine.net/profile/john", Role: model.RoleVideoEditor},
			{Name: "Acme Studio", Email: "contact@acme.co", ProfileLink: "https://www.twine.net/profile/acme", Role: model.RoleVideoEditor},
			{Name: "Jane Doe", Email: "jane@gmail.com", ProfileLink: "https://www.twine.net/profile/jane", Role: model.RoleUGCCreator},
			{Name: "Test User", Email: "test@test.com", ProfileLink: "https://www.twine.net/profile/test-3", Role: model.RoleUGCCreator},
		}

		accepted := 0
		emails := map[string]struct{}{}
		for _, c := range batch {
			p, err := v.Validate(ctx, c)
			if err == nil {
				accepted++
				emails[p.Email] = struct{}{}
			} else {
				_, ok := validate.ReasonOf(err)
				So(ok, ShouldBeTrue)
			}
		}

		Convey("Then the seen set size equals the accepted count", func() {
			So(seen.Size(), ShouldEqual, int64(accepted))
		})

		Convey("Then no two accepted profiles share a normalized email", func() {
			So(len(emails), ShouldEqual, accepted)
		})
	})
}

func TestValidateOptions(t *testing.T) {
	Convey("Given a validator with customized lookup data", t, func() {
		ctx := context.Background()

		Convey("When the brand token list is replaced", func() {
			v := validate.New(dedupe.NewInMemorySeenSet(),
				validate.WithBrandTokens([]string{"guild"}),
			)

			c := goodCandidate()
			c.Name = "Acme Studio" // no longer a brand token
			_, err := v.Validate(ctx, c)
			So(err, ShouldBeNil)

			c = goodCandidate()
			c.Name = "Artisan Guild"
			c.Email = "artisan@fastmail.com"
			_, err = v.Validate(ctx, c)
			So(reasonOf(err), ShouldEqual, validate.ReasonNotAnIndividual)
		})

		Convey("When the placeholder domain list is replaced", func() {
			v := validate.New(dedupe.NewInMemorySeenSet(),
				validate.WithPlaceholderMarkers([]string{"placeholder"}),
				validate.WithPlaceholderDomains([]string{"seeded.dev"}),
			)

			c := goodCandidate()
			c.Email = "jane@seeded.dev"
			_, err := v.Validate(ctx, c)
			So(reasonOf(err), ShouldEqual, validate.ReasonPlaceholderData)

			// example.com is no longer reserved under the custom lists.
			c = goodCandidate()
			c.Email = "jane@precedent.co"
			_, err = v.Validate(ctx, c)
			So(err, ShouldBeNil)
		})

		Convey("When the profile host and prefix are customized", func() {
			v := validate.New(dedupe.NewInMemorySeenSet(),
				validate.WithProfileHost("www.crafted.io"),
				validate.WithProfilePathPrefix("/makers/"),
			)

			c := goodCandidate()
			c.ProfileLink = "https://crafted.io/makers/jane"
			_, err := v.Validate(ctx, c)
			So(err, ShouldBeNil)

			c = goodCandidate()
			c.Email = "second@fastmail.com"
			c.ProfileLink = "https://crafted.io/profile/jane"
			_, err = v.Validate(ctx, c)
			So(reasonOf(err), ShouldEqual, validate.ReasonInvalidProfileURL)
		})
	})
}

func TestReasons(t *testing.T) {
	Convey("Given the rejection reason catalog", t, func() {
		reasons := validate.Reasons()

		Convey("Then it lists all five reasons in stage order", func() {
			So(reasons, ShouldResemble, []validate.Reason{
				validate.ReasonInvalidEmail,
				validate.ReasonPlaceholderData,
				validate.ReasonNotAnIndividual,
				validate.ReasonInvalidProfileURL,
				validate.ReasonDuplicateEmail,
			})
		})
	})

	Convey("Given a rejection error", t, func() {
		rej := &validate.Rejection{Reason: validate.ReasonInvalidEmail, Detail: "nope"}

		Convey("Then Error includes reason and detail", func() {
			So(rej.Error(), ShouldEqual, "invalid_email: nope")
		})

		Convey("Then ReasonOf round-trips", func() {
			reason, ok := validate.ReasonOf(rej)
			So(ok, ShouldBeTrue)
			So(reason, ShouldEqual, validate.ReasonInvalidEmail)

			_, ok = validate.ReasonOf(nil)
			So(ok, ShouldBeFalse)
		})
	})
}
