package app_test

import (
	"bytes"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/lvalg/cmd/lvalg/app"
)

var _ = Describe("lvalg command", func() {
	var fs vfs.FileSystem
	var buf *bytes.Buffer

	run := func(args ...string) error {
		cmd := app.New(fs)
		buf.Reset()
		cmd.SetOut(buf)
		cmd.SetErr(buf)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	exists := func(path string) bool {
		ok, err := vfs.Exists(fs, path)
		Expect(err).To(Succeed())
		return ok
	}

	BeforeEach(func() {
		fs = memoryfs.New()
		buf = bytes.NewBuffer(nil)
	})

	Context("generate and info", func() {
		It("writes a ring and describes it", func() {
			Expect(run("generate", "ring", "6", "-o", "/ring.edges")).To(Succeed())
			Expect(buf.String()).To(Equal("/ring.edges: Graph{n=6 m=6 undirected}\n"))

			Expect(run("info", "/ring.edges")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("format:     edgelist"))
			Expect(buf.String()).To(ContainSubstring("vertices:   6"))
			Expect(buf.String()).To(ContainSubstring("edges:      6"))
			Expect(buf.String()).To(ContainSubstring("components: 1"))
		})

		It("names vertices of symbolic formats", func() {
			Expect(run("--names", "symbol", "generate", "star", "4", "-o", "/star.ncol")).To(Succeed())
			data, err := vfs.ReadFile(fs, "/star.ncol")
			Expect(err).To(Succeed())
			Expect(string(data)).To(Equal("A B\nA C\nA D\n"))
		})

		It("creates directed graphs", func() {
			Expect(run("--directed", "generate", "tree", "7", "2", "-o", "/tree.net")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("Graph{n=7 m=6 directed}"))
		})

		It("is deterministic with a seed", func() {
			Expect(run("generate", "gnp", "20", "0.3", "--seed", "3", "-o", "/a.edges")).To(Succeed())
			Expect(run("generate", "gnp", "20", "0.3", "--seed", "3", "-o", "/b.edges")).To(Succeed())
			a, err := vfs.ReadFile(fs, "/a.edges")
			Expect(err).To(Succeed())
			b, err := vfs.ReadFile(fs, "/b.edges")
			Expect(err).To(Succeed())
			Expect(a).To(Equal(b))
		})

		It("writes word and LCF graphs", func() {
			Expect(run("generate", "debruijn", "2", "3", "-o", "/db.edges")).To(Succeed())
			Expect(buf.String()).To(Equal("/db.edges: Graph{n=8 m=16 directed}\n"))
			Expect(run("generate", "kautz", "2", "1", "-o", "/k.edges")).To(Succeed())
			Expect(buf.String()).To(Equal("/k.edges: Graph{n=6 m=12 directed}\n"))
			Expect(run("generate", "--repeats", "7", "-o", "/heawood.graphml", "--", "lcf", "14", "5", "-5")).To(Succeed())
			Expect(buf.String()).To(Equal("/heawood.graphml: Graph{n=14 m=21 undirected}\n"))
		})

		It("rejects bad arguments", func() {
			Expect(run("generate", "hypercube", "3", "-o", "/x.edges")).NotTo(Succeed())
			Expect(run("generate", "kautz", "0", "1", "-o", "/x.edges")).NotTo(Succeed())
			Expect(run("generate", "ring", "six", "-o", "/x.edges")).NotTo(Succeed())
			Expect(run("generate", "star", "4", "--mode", "sideways", "-o", "/x.edges")).NotTo(Succeed())
			Expect(run("generate", "ring", "6", "-o", "/x.unknown")).NotTo(Succeed())
			Expect(run("generate", "ring", "6")).NotTo(Succeed())
		})
	})

	Context("algebra", func() {
		BeforeEach(func() {
			Expect(run("generate", "full", "6", "-o", "/full.edges")).To(Succeed())
			Expect(run("generate", "star", "6", "-o", "/star.edges")).To(Succeed())
			Expect(run("generate", "ring", "6", "-o", "/ring.edges")).To(Succeed())
		})

		It("subtracts a star from a full graph", func() {
			Expect(run("op", "difference", "/full.edges", "/star.edges", "-o", "/d.edges")).To(Succeed())
			Expect(buf.String()).To(Equal("/d.edges: Graph{n=6 m=10 undirected}\n"))

			Expect(run("op", "-", "/full.edges", "/star.edges", "-o", "/d2.edges")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("Graph{n=6 m=10 undirected}"))
		})

		It("applies n-ary and unary operations", func() {
			Expect(run("op", "union", "/ring.edges", "/ring.edges", "/ring.edges", "-o", "/u.edges")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("Graph{n=18 m=18 undirected}"))

			Expect(run("op", "complement", "/ring.edges", "-o", "/c.edges")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("Graph{n=6 m=9 undirected}"))

			Expect(run("op", "multiply", "/star.edges", "--times", "3", "-o", "/m.edges")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("Graph{n=18 m=15 undirected}"))
		})

		It("rejects unknown operations and wrong operand counts", func() {
			Expect(run("op", "xor", "/full.edges", "/star.edges", "-o", "/x.edges")).NotTo(Succeed())
			Expect(run("op", "difference", "/full.edges", "-o", "/x.edges")).NotTo(Succeed())
			Expect(run("op", "merge", "/missing.edges", "-o", "/x.edges")).NotTo(Succeed())
			Expect(exists("/x.edges")).To(BeFalse())
		})

		It("evaluates expressions", func() {
			Expect(run("eval", "~(J - G) + G", "-g", "J=/full.edges", "-g", "G=/star.edges", "-o", "/e.graphml")).To(Succeed())
			Expect(buf.String()).To(Equal("/e.graphml: Graph{n=12 m=10 undirected}\n"))

			Expect(run("eval", "J - X", "-g", "J=/full.edges", "-o", "/x.edges")).NotTo(Succeed())
			Expect(run("eval", "J", "-g", "J", "-o", "/x.edges")).NotTo(Succeed())
		})

		It("decomposes into component files", func() {
			Expect(run("op", "union", "/ring.edges", "/star.edges", "-o", "/two.edges")).To(Succeed())
			Expect(run("decompose", "/two.edges", "-o", "/comp.edges.gz")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("2 weak components"))
			Expect(exists("/comp-0.edges.gz")).To(BeTrue())
			Expect(exists("/comp-1.edges.gz")).To(BeTrue())

			Expect(run("decompose", "/two.edges", "--min-size", "7", "-o", "/big.edges")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("0 weak components"))

			Expect(run("decompose", "/two.edges", "--mode", "sideways", "-o", "/x.edges")).NotTo(Succeed())
		})
	})

	Context("convert", func() {
		It("keeps the graph across formats and compression", func() {
			Expect(run("generate", "lattice", "3", "4", "-o", "/grid.edges")).To(Succeed())
			Expect(run("convert", "/grid.edges", "/grid.graphml.zst")).To(Succeed())
			Expect(run("convert", "/grid.graphml.zst", "/grid.net.lz4")).To(Succeed())
			Expect(buf.String()).To(Equal("/grid.net.lz4: Graph{n=12 m=17 undirected}\n"))

			Expect(run("info", "/grid.net.lz4")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("format:     pajek"))
		})

		It("carries vertex names over", func() {
			Expect(run("--names", "excel", "generate", "ring", "3", "-o", "/r.ncol")).To(Succeed())
			Expect(run("convert", "/r.ncol", "/r.net")).To(Succeed())
			data, err := vfs.ReadFile(fs, "/r.net")
			Expect(err).To(Succeed())
			Expect(string(data)).To(Equal("*Vertices 3\n1 \"A\"\n2 \"B\"\n3 \"C\"\n*Edges\n1 2\n2 3\n3 1\n"))
		})

		It("honors explicit formats", func() {
			Expect(run("generate", "ring", "4", "-o", "/r.data", "-f", "adjlist")).To(Succeed())
			Expect(run("convert", "/r.data", "/r.txt", "--from", "adjlist", "--to", "dimacs")).To(Succeed())
			data, err := vfs.ReadFile(fs, "/r.txt")
			Expect(err).To(Succeed())
			Expect(string(data)).To(HavePrefix("c created by lvalg\np edge 4 4\n"))

			Expect(run("convert", "/r.data", "/r.dot", "--from", "nope")).NotTo(Succeed())
			Expect(run("convert", "/r.dot", "/r.edges")).NotTo(Succeed())
		})
	})

	Context("config", func() {
		It("reads defaults from the config file", func() {
			Expect(vfs.WriteFile(fs, "/cfg.yaml", []byte("directed: true\nseed: 11\nlogLevel: info\n"), 0o644)).To(Succeed())
			Expect(run("--config", "/cfg.yaml", "generate", "ring", "4", "-o", "/r.edges")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("Graph{n=4 m=4 directed}"))

			Expect(run("--config", "/cfg.yaml", "generate", "gnp", "10", "0.5", "-o", "/a.edges")).To(Succeed())
			Expect(run("generate", "gnp", "10", "0.5", "--seed", "11", "-d", "-o", "/b.edges")).To(Succeed())
			a, err := vfs.ReadFile(fs, "/a.edges")
			Expect(err).To(Succeed())
			b, err := vfs.ReadFile(fs, "/b.edges")
			Expect(err).To(Succeed())
			Expect(a).To(Equal(b))
		})

		It("lets flags override the config file", func() {
			Expect(vfs.WriteFile(fs, "/cfg.yaml", []byte("directed: true\n"), 0o644)).To(Succeed())
			Expect(run("--config", "/cfg.yaml", "--directed=false", "generate", "ring", "4", "-o", "/r.edges")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("undirected"))
		})

		It("rejects broken configuration", func() {
			Expect(vfs.WriteFile(fs, "/bad.yaml", []byte("colour: blue\n"), 0o644)).To(Succeed())
			Expect(run("--config", "/bad.yaml", "generate", "ring", "4", "-o", "/r.edges")).NotTo(Succeed())
			Expect(run("--config", "/missing.yaml", "generate", "ring", "4", "-o", "/r.edges")).NotTo(Succeed())
			Expect(run("--log-level", "loud", "generate", "ring", "4", "-o", "/r.edges")).NotTo(Succeed())
		})
	})
})
