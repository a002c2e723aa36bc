// Command pictarcdump inspects a recorded-drawing archive without
// rendering it, printing a summary of its resource sections and
// recursing into any sub-pictures.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/archivewire/pictarc/archive"
	"github.com/archivewire/pictarc/picture"
)

var (
	recurse = pflag.BoolP("recurse", "r", true, "print sub-pictures recursively")
	quiet   = pflag.BoolP("quiet", "q", false, "only print whether the file is a valid archive")
)

func main() {
	pflag.Parse()
	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: pictarcdump [flags] <archive-file>")
		os.Exit(2)
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "pictarcdump:", err)
		os.Exit(1)
	}
	defer f.Close()

	ok, peeked, err := archive.Sniff(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pictarcdump:", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Println("not a recorded-drawing archive")
		os.Exit(1)
	}
	pic, err := archive.Decode(peeked)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pictarcdump:", err)
		os.Exit(1)
	}
	if *quiet {
		fmt.Println("ok")
		return
	}

	dump(pic, 0)
}

func dump(pic *picture.Data, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	left, top, right, bottom := pic.Info.CullRect()
	fmt.Printf("%spicture v%d cull=(%g,%g,%g,%g) op_bytes=%d\n",
		indent, pic.Info.Version(), left, top, right, bottom, len(pic.OpData))
	fmt.Printf("%s  paints=%d paths=%d text_blobs=%d vertices=%d images=%d drawables=%d sub_pictures=%d\n",
		indent, pic.PaintCount(), pic.PathCount(), pic.TextBlobCount(), pic.VerticesCount(),
		pic.ImageCount(), pic.DrawableCount(), len(pic.SubPictures))

	if !*recurse {
		return
	}
	for _, sub := range pic.SubPictures {
		dump(sub, depth+1)
	}
}
