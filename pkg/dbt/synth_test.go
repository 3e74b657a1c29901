package dbt_test

import (
	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/solo-io/dbt/pkg/dbt"
	"github.com/solo-io/dbt/pkg/debuggers"
)

const mockOnlySource = `/***
#if mock
  print abc
  #check __abc__
  print xyz
  #check __xyz__
***/
`

var _ = Describe("GenerateScript", func() {
	It("should wrap each checked command in its own span", func() {
		script, warnings, err := GenerateScript(Mock(), mustDefinition("t.rs", mockOnlySource))
		Expect(err).NotTo(HaveOccurred())
		Expect(warnings).To(BeEmpty())
		Expect(script).To(Equal(
			begin + "0\n" +
				"print abc\n" +
				end + "0\n" +
				begin + "1\n" +
				"print xyz\n" +
				end + "1\n"))
	})

	It("should leave out commands of branches that don't apply", func() {
		gdb, err := NewDebugger(debuggers.Gdb, "9.2", "gdb", nil)
		Expect(err).NotTo(HaveOccurred())
		script, _, err := GenerateScript(gdb, mustDefinition("t.rs", mockOnlySource))
		Expect(err).NotTo(HaveOccurred())
		Expect(script).To(BeEmpty())
	})

	It("should share a span between commands until one is checked", func() {
		def := mustDefinition("t.rs", scriptOnly("print a\nprint b\n#check b\nprint c"))
		script, _, err := GenerateScript(Mock(), def)
		Expect(err).NotTo(HaveOccurred())
		Expect(script).To(Equal(
			begin + "0\nprint a\nprint b\n" + end + "0\n" +
				begin + "1\nprint c\n" + end + "1\n"))
	})

	It("should emit the prelude and breakpoints first", func() {
		source := "fn main() {\n    zzz(); // #break\n}\n" + scriptOnly("dx x\n#check 5")
		cdb, err := NewDebugger(debuggers.Cdb, "10.0", "cdb", []string{"sxe ld"})
		Expect(err).NotTo(HaveOccurred())
		script, _, err := GenerateScript(cdb, mustDefinition("tests/basic.rs", source))
		Expect(err).NotTo(HaveOccurred())
		Expect(script).To(Equal(
			".lines -e\n" +
				"sxe ld\n" +
				"bp `basic.rs:2`\n" +
				".echo " + begin + "0\n" +
				"dx x\n" +
				".echo " + end + "0\n"))
	})

	It("should use the gdb marker and breakpoint syntax", func() {
		source := "int main() { // #break\n" + scriptOnly("print x\n#check 1")
		gdb, err := NewDebugger(debuggers.Gdb, "9.2", "gdb", nil)
		Expect(err).NotTo(HaveOccurred())
		script, _, err := GenerateScript(gdb, mustDefinition("main.c", source))
		Expect(err).NotTo(HaveOccurred())
		Expect(script).To(Equal(
			"break 'main.c:1'\n" +
				"python print('" + begin + "0')\n" +
				"print x\n" +
				"python print('" + end + "0')\n"))
	})

	It("should report dangling checks as warnings", func() {
		def := mustDefinition("t.rs", scriptOnly("#check nothing\nprint a"))
		script, warnings, err := GenerateScript(Mock(), def)
		Expect(err).NotTo(HaveOccurred())
		Expect(warnings).To(HaveLen(1))
		Expect(warnings[0].Statement).To(Equal("#check nothing"))
		Expect(script).To(Equal(begin + "0\nprint a\n" + end + "0\n"))
	})

	It("should not annotate the definition's script", func() {
		def := mustDefinition("t.rs", mockOnlySource)
		first, _, err := GenerateScript(Mock(), def)
		Expect(err).NotTo(HaveOccurred())
		second, _, err := GenerateScript(Mock(), def)
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("should fail for lldb", func() {
		lldb, err := NewDebugger(debuggers.Lldb, "", "lldb", nil)
		Expect(err).NotTo(HaveOccurred())
		_, _, err = GenerateScript(lldb, mustDefinition("t.rs", scriptOnly("print a")))
		Expect(errors.Cause(err)).To(Equal(debuggers.ErrUnsupported))
	})
})
