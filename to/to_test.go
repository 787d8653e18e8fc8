package to_test

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tupyy/outcome/promise"
	"github.com/tupyy/outcome/to"
)

type point struct {
	X, Y int
}

type quotaError struct{}

func (*quotaError) Error() string {
	return "quota exceeded"
}

var _ = Describe("to", func() {
	Context("with a promise", func() {
		It("returns the value of a fulfilled promise", func() {
			v, err := to.To(promise.Go(context.Background(), func(ctx context.Context) (int, error) {
				return 42, nil
			}))
			Expect(err).To(BeNil())
			Expect(v).To(Equal(42))
		})

		It("returns the same error the operation failed with", func() {
			networkDown := errors.New("network down")

			v, err := to.To(promise.Go(context.Background(), func(ctx context.Context) (int, error) {
				return 0, networkDown
			}))
			Expect(v).To(BeZero())
			Expect(err).To(BeIdenticalTo(networkDown))
			Expect(err.Error()).To(Equal("network down"))
		})

		It("keeps wrapped errors intact", func() {
			wrapped := fmt.Errorf("fetch cats: %w", context.DeadlineExceeded)

			_, err := to.To(promise.Rejected[string](wrapped))
			Expect(err).To(BeIdenticalTo(wrapped))
			Expect(errors.Is(err, context.DeadlineExceeded)).To(BeTrue())
		})

		It("wraps a string reason", func() {
			v, err := to.To(promise.Rejected[int]("oops"))
			Expect(v).To(BeZero())
			Expect(err).To(MatchError("oops"))

			var rejection *to.RejectionError
			Expect(errors.As(err, &rejection)).To(BeTrue())
			Expect(rejection.Payload()).To(Equal("oops"))
		})

		It("wraps a number reason", func() {
			_, err := to.To(promise.Rejected[int](404))
			Expect(err).To(MatchError("404"))
		})

		It("wraps a nil reason", func() {
			_, err := to.To(promise.Rejected[int](nil))
			Expect(err).To(MatchError("null"))
		})

		It("wraps a typed nil error as null", func() {
			v, err := to.To(promise.Rejected[int]((*quotaError)(nil)))
			Expect(v).To(BeZero())
			Expect(err).ToNot(BeNil())
			Expect(err).To(MatchError("null"))
		})

		It("passes through the runtime error of panic(nil)", func() {
			p := promise.New(func(resolve func(int), reject func(any)) {
				panic(nil)
			})

			_, err := to.To(p)
			var panicNil *runtime.PanicNilError
			Expect(errors.As(err, &panicNil)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("panic called with nil argument"))
		})

		It("wraps a panic raised by the operation", func() {
			p := promise.New(func(resolve func(point), reject func(any)) {
				panic(point{X: 1, Y: 2})
			})

			v, err := to.To(p)
			Expect(v).To(Equal(point{}))
			Expect(err).To(MatchError("{1 2}"))
		})

		It("reports a cancelled operation as an error", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := to.To(promise.Go(ctx, func(ctx context.Context) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			}))
			Expect(err).To(MatchError(context.Canceled))
		})

		It("returns an outcome with Settle", func() {
			o := to.Settle[string](promise.Resolved("cats"))
			Expect(o.IsOk()).To(BeTrue())
			Expect(o.IsErr()).To(BeFalse())
			Expect(o.Value).To(Equal("cats"))

			o = to.Settle[string](promise.Rejected[string](12.5))
			Expect(o.IsErr()).To(BeTrue())
			Expect(o.Value).To(BeEmpty())
			Expect(o.Err).To(MatchError("12.5"))
		})
	})

	Context("with a mocked awaiter", func() {
		var (
			ctrl    *gomock.Controller
			awaiter *MockAwaiter[int]
		)

		BeforeEach(func() {
			ctrl = gomock.NewController(GinkgoT())
			awaiter = NewMockAwaiter[int](ctrl)
		})

		AfterEach(func() {
			ctrl.Finish()
		})

		It("awaits exactly once on success", func() {
			awaiter.EXPECT().Await().Return(7, nil, true).Times(1)

			v, err := to.Settle[int](awaiter).Unpack()
			Expect(err).To(BeNil())
			Expect(v).To(Equal(7))
		})

		It("drops the value of a rejected operation", func() {
			awaiter.EXPECT().Await().Return(7, "late", false).Times(1)

			v, err := to.Settle[int](awaiter).Unpack()
			Expect(v).To(BeZero())
			Expect(err).To(MatchError("late"))
		})
	})

	Context("with Call", func() {
		It("returns the value", func() {
			v, err := to.Call(context.Background(), func(ctx context.Context) ([]string, error) {
				return []string{"a", "b"}, nil
			})
			Expect(err).To(BeNil())
			Expect(v).To(ConsistOf("a", "b"))
		})

		It("zeroes the value when an error is returned", func() {
			v, err := to.Call(context.Background(), func(ctx context.Context) (int, error) {
				return 3, errors.New("disk full")
			})
			Expect(v).To(BeZero())
			Expect(err).To(MatchError("disk full"))
		})

		It("recovers an error panic without changing it", func() {
			boom := errors.New("boom")

			_, err := to.Call(context.Background(), func(ctx context.Context) (int, error) {
				panic(boom)
			})
			Expect(err).To(BeIdenticalTo(boom))
		})

		It("recovers panic(nil) as a runtime error", func() {
			_, err := to.Call(context.Background(), func(ctx context.Context) (int, error) {
				panic(nil)
			})

			var panicNil *runtime.PanicNilError
			Expect(errors.As(err, &panicNil)).To(BeTrue())
		})

		It("recovers any other panic", func() {
			_, err := to.Call(context.Background(), func(ctx context.Context) (int, error) {
				panic(404)
			})
			Expect(err).To(MatchError("404"))
		})
	})
})
