package debuggers_test

import (
	"context"
	"os/exec"
	"time"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/solo-io/dbt/pkg/debuggers"
)

var _ = Describe("Exec", func() {
	BeforeEach(func() {
		if _, err := exec.LookPath("sh"); err != nil {
			Skip("no shell available")
		}
	})

	It("should capture stdout and stderr", func() {
		out, err := Exec(context.Background(), "sh", "-c", "echo out; echo err >&2")
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Stdout).To(Equal("out\n"))
		Expect(out.Stderr).To(Equal("err\n"))
		Expect(out.ExitStatus.Success()).To(BeTrue())
	})

	It("should report a non zero exit through the output", func() {
		out, err := Exec(context.Background(), "sh", "-c", "echo partial; exit 3")
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Stdout).To(Equal("partial\n"))
		Expect(out.ExitStatus).To(Equal(ExitFailure))
	})

	It("should replace invalid utf-8", func() {
		out, err := Exec(context.Background(), "sh", "-c", `printf 'a\377b'`)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Stdout).To(Equal("a�b"))
	})

	It("should fail when the command can't be started", func() {
		_, err := Exec(context.Background(), "/does/not/exist/dbg")
		Expect(err).To(HaveOccurred())
	})

	It("should fail when the context expires", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := Exec(ctx, "sh", "-c", "sleep 5")
		Expect(err).To(HaveOccurred())
	})

	It("should not wait for children holding the output open when the context expires", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		start := time.Now()
		_, err := Exec(ctx, "sh", "-c", "sleep 4 & sleep 4; wait")
		Expect(err).To(HaveOccurred())
		Expect(errors.Cause(err)).To(Equal(context.DeadlineExceeded))
		Expect(time.Since(start)).To(BeNumerically("<", 2*time.Second))
	})
})
