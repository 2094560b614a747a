package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	dedupe "github.com/okian/scout/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemorySeenSet(t *testing.T) {
	Convey("Given a new in-memory seen set", t, func() {
		Convey("When creating a set with default options", func() {
			s := dedupe.NewInMemorySeenSet()

			Convey("Then it should start empty", func() {
				So(s, ShouldNotBeNil)
				So(s.Size(), ShouldEqual, 0)
			})
		})

		Convey("When creating a set with an initial capacity", func() {
			s := dedupe.NewInMemorySeenSet(
				dedupe.WithInitialCapacity(128),
			)

			Convey("Then it should still start empty", func() {
				So(s, ShouldNotBeNil)
				So(s.Size(), ShouldEqual, 0)
			})
		})

		Convey("When recording emails", func() {
			s := dedupe.NewInMemorySeenSet()

			Convey("And the email is new", func() {
				seen := s.SeenAndRecord(context.Background(), "jane@gmail.com")

				Convey("Then it should return false and record the email", func() {
					So(seen, ShouldBeFalse)
					So(s.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the email was already recorded", func() {
				s.SeenAndRecord(context.Background(), "jane@gmail.com")

				seen := s.SeenAndRecord(context.Background(), "jane@gmail.com")

				Convey("Then it should return true without growing the set", func() {
					So(seen, ShouldBeTrue)
					So(s.Size(), ShouldEqual, 1)
				})
			})

			Convey("And multiple distinct emails are recorded", func() {
				emails := []string{
					"a@gmail.com", "b@gmail.com", "c@gmail.com", "d@gmail.com",
				}
				for _, e := range emails {
					So(s.SeenAndRecord(context.Background(), e), ShouldBeFalse)
				}

				Convey("Then the set size should equal the number of distinct emails", func() {
					So(s.Size(), ShouldEqual, int64(len(emails)))

					for _, e := range emails {
						So(s.SeenAndRecord(context.Background(), e), ShouldBeTrue)
					}
					So(s.Size(), ShouldEqual, int64(len(emails)))
				})
			})
		})

		Convey("When recording from multiple goroutines", func() {
			s := dedupe.NewInMemorySeenSet()

			const workers = 8
			const perWorker = 100

			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < perWorker; i++ {
						// All workers race on the same email space.
						s.SeenAndRecord(context.Background(), fmt.Sprintf("user%d@gmail.com", i))
					}
				}()
			}
			wg.Wait()

			Convey("Then each distinct email should be recorded exactly once", func() {
				So(s.Size(), ShouldEqual, int64(perWorker))
			})
		})
	})
}
