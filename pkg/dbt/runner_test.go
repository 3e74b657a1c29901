package dbt_test

import (
	"context"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/solo-io/dbt/pkg/dbt"
	"github.com/solo-io/dbt/pkg/debuggers"
)

var _ = Describe("Runner", func() {
	var (
		workDir string
		lldb    *Debugger
	)

	BeforeEach(func() {
		var err error
		workDir, err = ioutil.TempDir("", "dbt-runner")
		Expect(err).NotTo(HaveOccurred())
		lldb, err = NewDebugger(debuggers.Lldb, "", "lldb", nil)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(workDir)
	})

	jobs := func() []Job {
		return []Job{
			{Definition: mustDefinition("echo.rs", scriptOnly("print abc\n#check abc")), Debuggee: "echo"},
			{Definition: mustDefinition("missing.rs", scriptOnly("print abc\n#check xyz")), Debuggee: "missing"},
			{Definition: mustDefinition("ignored.rs", scriptOnly("#ignore-test mock\nprint abc")), Debuggee: "ignored"},
		}
	}

	It("should run every job against every debugger in order", func() {
		r := &Runner{Jobs: 2, WorkDir: workDir}
		results, errs, err := r.Run(context.Background(), []*Debugger{Mock(), lldb}, jobs())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(6))
		Expect(errs).To(HaveLen(6))

		Expect(results[0].Status).To(Equal(Passed))
		Expect(results[0].Test).To(Equal("echo.rs"))
		Expect(results[2].Status).To(Equal(Failed))
		Expect(results[2].Message).To(ContainSubstring("Could not find 'xyz'"))
		Expect(results[4].Status).To(Equal(Ignored))

		for _, i := range []int{1, 3, 5} {
			Expect(results[i]).To(BeNil())
			runErr, ok := errs[i].(*RunError)
			Expect(ok).To(BeTrue())
			Expect(runErr.Debugger).To(Equal(lldb.String()))
			Expect(errors.Cause(runErr)).To(Equal(debuggers.ErrUnsupported))
		}
		for _, i := range []int{0, 2, 4} {
			Expect(errs[i]).NotTo(HaveOccurred())
		}
	})

	It("should clean up the generated scripts", func() {
		r := &Runner{WorkDir: workDir}
		_, _, err := r.Run(context.Background(), []*Debugger{Mock()}, jobs())
		Expect(err).NotTo(HaveOccurred())
		files, err := ioutil.ReadDir(workDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(files).To(BeEmpty())
	})

	It("should report a debugger that exceeds the timeout and still run the others", func() {
		if _, err := exec.LookPath("sh"); err != nil {
			Skip("no shell available")
		}
		binDir, err := ioutil.TempDir("", "dbt-slow-debugger")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(binDir)
		// keeps a child holding the output open, like a debuggee stopped under gdb
		slowCmd := filepath.Join(binDir, "slowgdb")
		Expect(ioutil.WriteFile(slowCmd, []byte("#!/bin/sh\nsleep 5 & sleep 5; wait\n"), 0755)).To(Succeed())
		slow, err := NewDebugger(debuggers.Gdb, "9.2", slowCmd, nil)
		Expect(err).NotTo(HaveOccurred())

		r := &Runner{Jobs: 2, Timeout: 200 * time.Millisecond, WorkDir: workDir}
		start := time.Now()
		results, errs, err := r.Run(context.Background(), []*Debugger{Mock(), slow}, jobs()[:1])
		Expect(err).NotTo(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically("<", 3*time.Second))

		Expect(results[0].Status).To(Equal(Passed))
		Expect(errs[0]).NotTo(HaveOccurred())

		Expect(results[1]).To(BeNil())
		runErr, ok := errs[1].(*RunError)
		Expect(ok).To(BeTrue())
		Expect(runErr.Debugger).To(Equal(slow.String()))
		Expect(errors.Cause(runErr)).To(Equal(context.DeadlineExceeded))
	})

	It("should stop when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := &Runner{Jobs: 1, WorkDir: workDir}
		_, _, err := r.Run(ctx, []*Debugger{Mock()}, jobs())
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("RunTest", func() {
	It("should report a debugger that can't be started", func() {
		gdb, err := NewDebugger(debuggers.Gdb, "9.2", "/does/not/exist/gdb", nil)
		Expect(err).NotTo(HaveOccurred())
		_, err = RunTest(context.Background(), gdb, mustDefinition("t.rs", scriptOnly("print x")), "t", "")
		Expect(err).To(HaveOccurred())
	})
})
