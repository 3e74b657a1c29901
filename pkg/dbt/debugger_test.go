package dbt_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/solo-io/dbt/pkg/dbt"
	"github.com/solo-io/dbt/pkg/debuggers"
	"github.com/solo-io/dbt/pkg/script"
)

var _ = Describe("Debugger", func() {
	It("should expose its kind and version to conditions", func() {
		d, err := NewDebugger(debuggers.Cdb, "10.0", "cdb.exe", []string{".lines -e"})
		Expect(err).NotTo(HaveOccurred())
		Expect(d.EvaluationContext().Values).To(Equal(map[string]interface{}{
			"debugger": "cdb",
			"version":  "10.0",
			"major":    10,
			"minor":    0,
			"gdb":      false,
			"cdb":      true,
			"lldb":     false,
			"mock":     false,
		}))
		Expect(d.String()).To(Equal("cdb - 10.0 (cdb.exe)"))
		Expect(d.Backend().Kind()).To(Equal(debuggers.Cdb))
	})

	It("should compare its version numerically in conditions", func() {
		old, err := NewDebugger(debuggers.Gdb, "9.2", "gdb", nil)
		Expect(err).NotTo(HaveOccurred())
		current, err := NewDebugger(debuggers.Gdb, "12.1", "gdb", nil)
		Expect(err).NotTo(HaveOccurred())

		for _, src := range []string{`major >= 10`, `versionAtLeast(version, "10")`} {
			c, err := script.CompileCondition(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Holds(old.EvaluationContext())).To(BeFalse(), src)
			Expect(c.Holds(current.EvaluationContext())).To(BeTrue(), src)
		}
	})

	It("should leave major and minor undefined for unparseable versions", func() {
		d, err := NewDebugger(debuggers.Gdb, "", "gdb", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.EvaluationContext().Values).NotTo(HaveKey("major"))
	})

	It("should not share its prelude with the caller", func() {
		prelude := []string{"set a"}
		d, err := NewDebugger(debuggers.Gdb, "9.2", "gdb", prelude)
		Expect(err).NotTo(HaveOccurred())
		prelude[0] = "changed"
		Expect(d.Prelude()).To(Equal([]string{"set a"}))
	})

	It("should decide whether a test applies", func() {
		def := mustDefinition("t.rs", scriptOnly("#if gdb\n  #ignore-test\nprint x"))
		gdb, err := NewDebugger(debuggers.Gdb, "9.2", "gdb", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(gdb.IgnoreTest(def)).To(BeTrue())
		Expect(Mock().IgnoreTest(def)).To(BeFalse())
	})

	It("should reject unknown kinds", func() {
		_, err := NewDebugger(debuggers.Kind(42), "", "x", nil)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Status", func() {
	It("should print in upper case", func() {
		Expect(Passed.String()).To(Equal("PASSED"))
		Expect(Errored.String()).To(Equal("ERRORED"))
		text, err := Ignored.MarshalText()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(text)).To(Equal("IGNORED"))
	})
})
