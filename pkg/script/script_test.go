package script_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/solo-io/dbt/pkg/script"
)

func contextFor(debugger string) EvaluationContext {
	return EvaluationContext{Values: map[string]interface{}{
		"debugger": debugger,
		"gdb":      debugger == "gdb",
		"cdb":      debugger == "cdb",
	}}
}

func leaves(s *Script, ctx EvaluationContext) []string {
	var res []string
	s.WalkApplicableLeaves(ctx, func(stmt Statement) bool {
		res = append(res, stmt.String())
		return true
	})
	return res
}

var _ = Describe("Script", func() {
	var s *Script

	BeforeEach(func() {
		s = mustParse(`
start
#if gdb
  print gdb
  #check g
#else
  dx cdb
  #check-unordered
    c1
    c2
#ignore-test cdb
end
`)
	})

	Describe("WalkApplicableLeaves", func() {
		It("should visit the leaves of the branches that hold, in order", func() {
			Expect(leaves(s, contextFor("gdb"))).To(Equal([]string{"start", "print gdb", "#check g", "end"}))
			Expect(leaves(s, contextFor("cdb"))).To(Equal([]string{"start", "dx cdb", "#check-unordered [c1, c2]", "end"}))
		})

		It("should stop when the visitor returns false", func() {
			var visited []string
			s.WalkApplicableLeaves(contextFor("gdb"), func(stmt Statement) bool {
				visited = append(visited, stmt.String())
				return len(visited) < 2
			})
			Expect(visited).To(Equal([]string{"start", "print gdb"}))
		})
	})

	Describe("IgnoreTest", func() {
		It("should apply only where its condition holds", func() {
			Expect(s.IgnoreTest(contextFor("gdb"))).To(BeFalse())
			Expect(s.IgnoreTest(contextFor("cdb"))).To(BeTrue())
		})

		It("should always apply without condition", func() {
			Expect(mustParse("#ignore-test").IgnoreTest(contextFor("gdb"))).To(BeTrue())
		})

		It("should only apply inside a branch that holds", func() {
			ignoreInBranch := mustParse("#if cdb\n  #ignore-test\n")
			Expect(ignoreInBranch.IgnoreTest(contextFor("gdb"))).To(BeFalse())
			Expect(ignoreInBranch.IgnoreTest(contextFor("cdb"))).To(BeTrue())
		})
	})

	Describe("Clone", func() {
		It("should produce id slots independent of the original", func() {
			clone := s.Clone()
			id := CorrelationID(7)
			clone.WalkApplicableLeaves(contextFor("gdb"), func(stmt Statement) bool {
				if exec, ok := stmt.(*Exec); ok {
					exec.ID = &id
				}
				return true
			})

			s.WalkApplicableLeaves(contextFor("gdb"), func(stmt Statement) bool {
				if exec, ok := stmt.(*Exec); ok {
					Expect(exec.ID).To(BeNil())
				}
				return true
			})
			Expect(leaves(clone, contextFor("cdb"))).To(Equal(leaves(s, contextFor("cdb"))))
		})
	})

	It("should print correlation ids with a hash", func() {
		Expect(CorrelationID(3).String()).To(Equal("#3"))
	})
})
