package main

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/fixedarray"
)

var _ = Describe("fixedarray command", func() {
	var (
		stdout *bytes.Buffer
		stderr *bytes.Buffer
	)

	run := func(args ...string) error {
		cmd := newRootCmd()
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	BeforeEach(func() {
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
	})

	Context("compare", func() {
		It("should report the length-first ordering", func() {
			Expect(run("compare", "4", "1,2,3")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("==: false"))
			Expect(stdout.String()).To(ContainSubstring("<: true"))
			Expect(stdout.String()).To(ContainSubstring("compare: 1"))
		})

		It("should treat blank input as the empty array", func() {
			Expect(run("compare", "", "1,2,3")).To(Succeed())
			Expect(stdout.String()).To(ContainSubstring("left: []"))
			Expect(stdout.String()).To(ContainSubstring("<: true"))
		})

		It("should emit yaml when configured", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "cfg.toml")
			Expect(os.WriteFile(path, []byte("output = \"yaml\"\n"), 0o600)).To(Succeed())

			Expect(run("--config", path, "compare", "1,2,3", "1,2,3")).To(Succeed())

			var r compareReport
			Expect(yaml.Unmarshal(stdout.Bytes(), &r)).To(Succeed())
			Expect(r.Left).To(Equal([]int{1, 2, 3}))
			Expect(r.Equal).To(BeTrue())
			Expect(r.NotEqual).To(BeFalse())
			Expect(r.Less).To(BeFalse())
			Expect(r.Compare).To(Equal(0))
		})

		It("should reject malformed elements", func() {
			Expect(run("compare", "1,a", "2")).To(MatchError(ContainSubstring("parse element")))
		})
	})

	Context("fill", func() {
		It("should print every position with the value", func() {
			Expect(run("fill", "3", "7")).To(Succeed())
			Expect(stdout.String()).To(Equal("length: 3\nelements: [7 7 7]\n"))
		})

		It("should accept a zero length", func() {
			Expect(run("fill", "0", "7")).To(Succeed())
			Expect(stdout.String()).To(Equal("length: 0\nelements: []\n"))
		})

		It("should refuse a negative length", func() {
			Expect(run("fill", "-1", "7")).To(HaveOccurred())
		})
	})

	Context("reverse", func() {
		It("should walk the list backwards", func() {
			Expect(run("reverse", "1,2,3")).To(Succeed())
			Expect(stdout.String()).To(Equal("length: 3\nelements: [3 2 1]\n"))
		})

		It("should honour the configured separator", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "cfg.yaml")
			Expect(os.WriteFile(path, []byte("separator: \";\"\n"), 0o600)).To(Succeed())

			Expect(run("-c", path, "reverse", "1;2")).To(Succeed())
			Expect(stdout.String()).To(Equal("length: 2\nelements: [2 1]\n"))
		})
	})

	Context("at", func() {
		It("should read a valid position", func() {
			Expect(run("at", "5,6,7", "2")).To(Succeed())
			Expect(stdout.String()).To(Equal("at(2): 7\n"))
		})

		It("should surface the out-of-range error", func() {
			err := run("at", "5,6,7", "3")
			Expect(err).To(MatchError(fixedarray.ErrOutOfRange))
			Expect(stderr.String()).To(ContainSubstring("out of range"))
		})

		It("should fail on an empty list", func() {
			Expect(run("at", "", "0")).To(MatchError(fixedarray.ErrOutOfRange))
		})
	})
})
