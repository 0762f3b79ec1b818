package main

import (
	"bytes"
	"encoding/json"
	"image/gif"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/riemann/internal/report"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var _ = Describe("generate_riemann_animation", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("writes one gif frame per step count", func() {
		output := filepath.Join(dir, "cubic.gif")
		out, err := execute(output, "--step-count", "3", "--width", "200", "--height", "150")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("cubic.gif"))

		f, err := os.Open(output)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		g, err := gif.DecodeAll(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Image).To(HaveLen(3))
		Expect(g.Delay).To(HaveEach(20))
		Expect(g.LoopCount).To(Equal(0))
	})

	It("uses the delay flag", func() {
		output := filepath.Join(dir, "slow.gif")
		_, err := execute(output, "--step-count", "2", "--delay", "50", "--width", "200", "--height", "150")
		Expect(err).NotTo(HaveOccurred())

		f, err := os.Open(output)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		g, err := gif.DecodeAll(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Delay).To(Equal([]int{50, 50}))
	})

	It("writes apng by extension and exports convergence data", func() {
		output := filepath.Join(dir, "parabola.png")
		export := filepath.Join(dir, "parabola.csv")
		_, err := execute(output, "--preset", "parabola", "--step-count", "4",
			"--width", "200", "--height", "150", "--export", export, "--chart")
		Expect(err).NotTo(HaveOccurred())
		Expect(output).To(BeARegularFile())
		Expect(export).To(BeARegularFile())
	})

	It("lets flags override the config file", func() {
		cfg := filepath.Join(dir, "run.yaml")
		Expect(os.WriteFile(cfg, []byte("function: x^2\nstep_count: 9\nmode: right\n"), 0644)).To(Succeed())
		export := filepath.Join(dir, "run.json")

		_, err := execute(filepath.Join(dir, "run.gif"), "--config", cfg, "--step-count", "2",
			"--width", "200", "--height", "150", "--export", export)
		Expect(err).NotTo(HaveOccurred())

		raw, err := os.ReadFile(export)
		Expect(err).NotTo(HaveOccurred())
		var data report.ExportData
		Expect(json.Unmarshal(raw, &data)).To(Succeed())
		Expect(data.Function).To(Equal("x^2"))
		Expect(data.Mode).To(Equal("right"))
		Expect(data.Frames).To(HaveLen(2))
	})

	DescribeTable("rejects invalid arguments",
		func(args ...string) {
			output := filepath.Join(dir, "bad.gif")
			out, err := execute(append([]string{output}, args...)...)
			Expect(err).To(HaveOccurred())
			Expect(out).To(ContainSubstring("Error"))
			Expect(output).NotTo(BeAnExistingFile())
		},
		Entry("unknown mode", "--mode", "middle"),
		Entry("three-element plot interval", "--plot-interval", "(1,2,3)"),
		Entry("three reals as integral interval", "--integral-interval", "(1,2,3)"),
		Entry("malformed integral interval", "--integral-interval", "(1,2,3,4)"),
		Entry("zero step count", "--step-count", "0"),
		Entry("negative delay", "--delay", "-1"),
		Entry("non-numeric step count", "--step-count", "many"),
		Entry("unknown preset", "--preset", "nope"),
		Entry("unknown theme", "--theme", "neon"),
		Entry("unknown export format", "--export", "data.txt"),
		Entry("oversized image", "--width", "40000"),
	)

	It("rejects the export path before rendering", func() {
		output := filepath.Join(dir, "run.gif")
		out, err := execute(output, "--step-count", "2", "--export", filepath.Join(dir, "data.txt"))
		Expect(err).To(MatchError(ContainSubstring("data.txt")))
		Expect(out).NotTo(ContainSubstring("riemann sum animation"))
		Expect(output).NotTo(BeAnExistingFile())
	})

	It("names the offending mode", func() {
		_, err := execute(filepath.Join(dir, "bad.gif"), "--mode", "middle")
		Expect(err).To(MatchError(ContainSubstring(`"middle"`)))
		Expect(err).To(MatchError(ContainSubstring("mode")))
	})

	It("requires an output file", func() {
		_, err := execute("--step-count", "3")
		Expect(err).To(HaveOccurred())
	})
})
