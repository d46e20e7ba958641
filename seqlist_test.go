package seqlist_test

import (
	"github.com/mgnsk/seqlist"
	itesting "github.com/mgnsk/seqlist/internal/testing"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("adding values", func() {
	var l *seqlist.List[int]

	BeforeEach(func() {
		l = seqlist.New[int]()
	})

	When("the list is empty", func() {
		Specify("it is empty", func() {
			Expect(l.IsEmpty()).To(BeTrue())
			Expect(l.Len()).To(BeZero())
			Expect(l.ToSlice()).To(BeEmpty())
		})

		Specify("Add appends", func() {
			l.Add(1)
			l.Add(2)
			l.Add(3)

			Expect(l.IsEmpty()).To(BeFalse())
			Expect(l.Len()).To(Equal(3))
			Expect(l.ToSlice()).To(Equal([]int{1, 2, 3}))
		})

		Specify("Insert at position 1 succeeds", func() {
			Expect(l.Insert(1, 7)).To(Succeed())
			Expect(l.ToSlice()).To(Equal([]int{7}))
		})
	})

	When("the list has values", func() {
		BeforeEach(func() {
			l = seqlist.Of([]int{10, 20, 30})
		})

		DescribeTable("Insert places the value at position",
			func(position int, want []int) {
				Expect(l.Insert(position, 99)).To(Succeed())
				Expect(l.Len()).To(Equal(4))
				Expect(l.ToSlice()).To(Equal(want))

				v, err := l.Get(position)
				Expect(err).NotTo(HaveOccurred())
				Expect(v).To(Equal(99))
			},
			Entry("front", 1, []int{99, 10, 20, 30}),
			Entry("middle", 2, []int{10, 99, 20, 30}),
			Entry("before back", 3, []int{10, 20, 99, 30}),
			Entry("after back", 4, []int{10, 20, 30, 99}),
		)

		Specify("Insert then Remove at the same position restores the list", func() {
			for position := 1; position <= l.Len()+1; position++ {
				Expect(l.Insert(position, 99)).To(Succeed())

				v, err := l.Remove(position)
				Expect(err).NotTo(HaveOccurred())
				Expect(v).To(Equal(99))
				Expect(l.ToSlice()).To(Equal([]int{10, 20, 30}))
			}
		})
	})
})

var _ = Describe("removing values", func() {
	var l *seqlist.List[string]

	BeforeEach(func() {
		l = seqlist.Of([]string{"one", "two", "three"})
	})

	DescribeTable("Remove returns the value at position and closes the gap",
		func(position int, removed string, want []string) {
			v, err := l.Remove(position)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(removed))
			Expect(l.Len()).To(Equal(2))
			Expect(l.ToSlice()).To(Equal(want))
		},
		Entry("front", 1, "one", []string{"two", "three"}),
		Entry("middle", 2, "two", []string{"one", "three"}),
		Entry("back", 3, "three", []string{"one", "two"}),
	)

	Specify("removing every value empties the list", func() {
		for !l.IsEmpty() {
			_, err := l.Remove(1)
			Expect(err).NotTo(HaveOccurred())
		}

		Expect(l.Len()).To(BeZero())
		Expect(l.Contains("one")).To(BeFalse())

		l.Add("four")
		Expect(l.ToSlice()).To(Equal([]string{"four"}))
	})

	Specify("Clear empties the list", func() {
		l.Clear()

		Expect(l.IsEmpty()).To(BeTrue())
		Expect(l.ToSlice()).To(BeEmpty())

		_, err := l.Get(1)
		Expect(err).To(MatchError(seqlist.ErrOutOfRange))
	})
})

var _ = Describe("reading and replacing values", func() {
	var l *seqlist.List[string]

	BeforeEach(func() {
		l = seqlist.Of([]string{"one", "two", "three"})
	})

	Specify("Get returns the value at position", func() {
		for position, want := range []string{"one", "two", "three"} {
			v, err := l.Get(position + 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(want))
		}
	})

	Specify("Replace returns the previous value", func() {
		prev, err := l.Replace(2, "TWO")
		Expect(err).NotTo(HaveOccurred())
		Expect(prev).To(Equal("two"))
		Expect(l.ToSlice()).To(Equal([]string{"one", "TWO", "three"}))
	})

	Specify("Contains compares values", func() {
		Expect(l.Contains("one")).To(BeTrue())
		Expect(l.Contains("three")).To(BeTrue())
		Expect(l.Contains("four")).To(BeFalse())
	})
})

var _ = Describe("invalid positions", func() {
	var l *seqlist.List[int]

	BeforeEach(func() {
		l = seqlist.Of([]int{1, 2, 3})
	})

	AfterEach(func() {
		Expect(l.Len()).To(Equal(3))
		Expect(l.ToSlice()).To(Equal([]int{1, 2, 3}))
	})

	DescribeTable("fail with ErrOutOfRange and leave the list unchanged",
		func(op func() error) {
			err := op()
			Expect(err).To(MatchError(seqlist.ErrOutOfRange))
		},
		Entry("Insert at 0", func() error { return l.Insert(0, 9) }),
		Entry("Insert after Len()+1", func() error { return l.Insert(5, 9) }),
		Entry("Remove at 0", func() error { _, err := l.Remove(0); return err }),
		Entry("Remove after Len()", func() error { _, err := l.Remove(4); return err }),
		Entry("Replace at -1", func() error { _, err := l.Replace(-1, 9); return err }),
		Entry("Replace after Len()", func() error { _, err := l.Replace(4, 9); return err }),
		Entry("Get at 0", func() error { _, err := l.Get(0); return err }),
		Entry("Get after Len()", func() error { _, err := l.Get(4); return err }),
		Entry("MoveToBack at 0", func() error { return l.MoveToBack(0) }),
		Entry("MoveToBack after Len()", func() error { return l.MoveToBack(4) }),
	)

	Specify("the error names the operation", func() {
		_, err := l.Remove(7)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("remove"))
		Expect(err.Error()).To(ContainSubstring(seqlist.ErrOutOfRange.Error()))

		err = l.MoveToBack(7)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("move to back"))
		Expect(err.Error()).To(ContainSubstring("remove"))
		Expect(err).To(MatchError(seqlist.ErrOutOfRange))
	})

	DescribeTable("the error carries the position and the length",
		func(op func() error, position int) {
			err := op()
			Expect(err).To(MatchError(seqlist.ErrOutOfRange))

			ctx := itesting.ErrorContext(err)
			Expect(ctx).To(HaveKeyWithValue("position", position))
			Expect(ctx).To(HaveKeyWithValue("length", 3))
		},
		Entry("Get", func() error { _, err := l.Get(5); return err }, 5),
		Entry("Insert", func() error { return l.Insert(0, 9) }, 0),
		Entry("MoveToBack", func() error { return l.MoveToBack(0) }, 0),
		Entry("MoveToBack after Len()", func() error { return l.MoveToBack(4) }, 4),
	)
})

var _ = Describe("snapshots", func() {
	Specify("ToSlice does not share memory with the list", func() {
		l := seqlist.Of([]int{1, 2, 3})

		values := l.ToSlice()
		values[0] = 100

		Expect(l.Get(1)).To(Equal(1))

		_, err := l.Replace(2, 200)
		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(Equal([]int{100, 2, 3}))
	})

	Specify("Of does not share memory with its argument", func() {
		values := []int{1, 2, 3}
		l := seqlist.Of(values)

		values[1] = 20

		Expect(l.ToSlice()).To(Equal([]int{1, 2, 3}))
	})
})
