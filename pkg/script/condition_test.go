package script_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/solo-io/dbt/pkg/script"
)

var _ = Describe("Condition", func() {
	gdbContext := EvaluationContext{Values: map[string]interface{}{
		"debugger": "gdb",
		"version":  "9.2",
		"major":    9,
		"minor":    2,
		"gdb":      true,
		"cdb":      false,
	}}

	evaluate := func(src string, ctx EvaluationContext) (bool, error) {
		c, err := CompileCondition(src)
		Expect(err).NotTo(HaveOccurred())
		return c.Evaluate(ctx)
	}

	It("should evaluate boolean names", func() {
		Expect(evaluate("gdb", gdbContext)).To(BeTrue())
		Expect(evaluate("cdb", gdbContext)).To(BeFalse())
		Expect(evaluate("gdb && !cdb", gdbContext)).To(BeTrue())
	})

	It("should compare values", func() {
		Expect(evaluate(`debugger == "gdb"`, gdbContext)).To(BeTrue())
		Expect(evaluate(`version == "10.0"`, gdbContext)).To(BeFalse())
	})

	It("should compare versions numerically", func() {
		Expect(evaluate(`major >= 10`, gdbContext)).To(BeFalse())
		Expect(evaluate(`major == 9 && minor >= 2`, gdbContext)).To(BeTrue())
		Expect(evaluate(`versionAtLeast(version, "10")`, gdbContext)).To(BeFalse())
		Expect(evaluate(`versionAtLeast(version, "9.1")`, gdbContext)).To(BeTrue())

		cdbContext := EvaluationContext{Values: map[string]interface{}{"version": "10.0.22621.1"}}
		Expect(evaluate(`versionAtLeast(version, "9.2")`, cdbContext)).To(BeTrue())
	})

	It("should not hold when a version can't be parsed", func() {
		c, err := CompileCondition(`versionAtLeast(version, "10")`)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Holds(EvaluationContext{Values: map[string]interface{}{"version": ""}})).To(BeFalse())
		Expect(c.Holds(EvaluationContext{})).To(BeFalse())
	})

	It("should treat undefined names as false", func() {
		Expect(evaluate("lldb", gdbContext)).To(BeFalse())
		Expect(evaluate("lldb", EvaluationContext{})).To(BeFalse())
	})

	It("should reject expressions that are not boolean", func() {
		_, err := CompileCondition(`"gdb"`)
		Expect(err).To(HaveOccurred())
	})

	It("should fail at runtime for non boolean values and not hold", func() {
		ctx := EvaluationContext{Values: map[string]interface{}{"version": "9.2"}}
		c, err := CompileCondition("version")
		Expect(err).NotTo(HaveOccurred())
		_, err = c.Evaluate(ctx)
		Expect(err).To(HaveOccurred())
		Expect(c.Holds(ctx)).To(BeFalse())
	})
})
