package render_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/texttree/pkg/format"
	"github.com/matzehuels/texttree/pkg/render"
	"github.com/matzehuels/texttree/pkg/tree"
)

func ExampleRender() {
	root := tree.WithChildNodes[tree.Text]("root",
		tree.NewString("Uncle"),
		tree.Strings("Aunt", "Child 3"),
	)

	out, err := render.Render(root, format.DirTree(format.Box()))
	if err != nil {
		panic(err)
	}
	fmt.Print(out)
	// Output:
	// root
	// ├── Uncle
	// └── Aunt
	//    └── Child 3
}

func ExampleRenderTo() {
	root := tree.WithChildNodes[tree.Text]("root",
		tree.NewString("Uncle"),
		tree.Strings("Aunt", "Child 3"),
	)

	if err := render.RenderTo(os.Stdout, root, format.DirTreeLeftWithPrefix(format.ASCII(), "# ")); err != nil {
		panic(err)
	}
	// Output:
	// # + root
	// # +--- Uncle
	// # '--, Aunt
	// #    '--- Child 3
}

func ExampleMeasure() {
	root := tree.WithChildNodes[tree.Text]("root",
		tree.NewString("Uncle"),
		tree.Strings("Aunt", "Child 3"),
	)

	s := render.Measure(root, format.Default())
	fmt.Println("Lines:", s.Lines)
	fmt.Println("Width:", s.Width)
	fmt.Println("Depth:", s.Depth)
	// Output:
	// Lines: 4
	// Width: 14
	// Depth: 2
}
