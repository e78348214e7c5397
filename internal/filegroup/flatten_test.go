package filegroup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/jucer2cmake/internal/cmake"
	"github.com/vk/jucer2cmake/internal/jucer"
	"github.com/vk/jucer2cmake/internal/xmltree"
)

func mainGroup(t *testing.T, doc string) *jucer.Group {
	t.Helper()
	root, err := xmltree.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return jucer.NewGroup(root)
}

func render(units []Unit) string {
	var buf bytes.Buffer
	w := cmake.NewWriter(&buf)
	Write(w, units)
	return buf.String()
}

func TestFlatten_SingleGroup(t *testing.T) {
	// --- Arrange ---
	g := mainGroup(t, `<MAINGROUP name="Foo">
	  <GROUP name="Source">
	    <FILE file="Source/Main.cpp" compile="1" resource="0"/>
	    <FILE file="Source/Main.h" resource="0"/>
	  </GROUP>
	</MAINGROUP>`)

	// --- Act ---
	units := Flatten(g)

	// --- Assert ---
	expected := []Unit{{
		Group:   "Foo/Source",
		Sources: []string{"Source/Main.cpp", "Source/Main.h"},
	}}
	if diff := cmp.Diff(expected, units); diff != "" {
		t.Fatalf("units mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "jucer_project_files(\"Foo/Source\"\n  \"Source/Main.cpp\"\n  \"Source/Main.h\"\n)\n\n", render(units))
}

func TestFlatten_SubgroupSplitsRuns(t *testing.T) {
	g := mainGroup(t, `<MAINGROUP name="App">
	  <FILE file="a.cpp"/>
	  <FILE file="icon.png" resource="1"/>
	  <GROUP name="Inner">
	    <FILE file="inner.cpp"/>
	    <GROUP name="Deep"><FILE file="deep.h"/></GROUP>
	  </GROUP>
	  <FILE file="b.cpp"/>
	  <GROUP name="Empty"/>
	  <GROUP name="Inner"><FILE file="again.cpp"/></GROUP>
	</MAINGROUP>`)

	units := Flatten(g)

	expected := []Unit{
		{Group: "App", Sources: []string{"a.cpp"}, Resources: []string{"icon.png"}},
		{Group: "App/Inner", Sources: []string{"inner.cpp"}},
		{Group: "App/Inner/Deep", Sources: []string{"deep.h"}},
		{Group: "App", Sources: []string{"b.cpp"}},
		{Group: "App/Inner", Sources: []string{"again.cpp"}},
	}
	if diff := cmp.Diff(expected, units); diff != "" {
		t.Fatalf("units mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatten_ExcludedSources(t *testing.T) {
	g := mainGroup(t, `<MAINGROUP name="G">
	  <FILE file="off.cpp" compile="0"/>
	  <FILE file="OFF.CPP" compile="0"/>
	  <FILE file="on.cpp" compile="1"/>
	  <FILE file="unset.cpp"/>
	  <FILE file="off.h" compile="0"/>
	  <FILE file="off.mm" compile="0"/>
	</MAINGROUP>`)

	units := Flatten(g)
	require.Len(t, units, 1)
	assert.Equal(t, []string{"off.cpp", "OFF.CPP"}, units[0].Excluded)
	assert.Len(t, units[0].Sources, 6)

	expected := "jucer_project_files(\"G\"\n" +
		"  \"off.cpp\"\n  \"OFF.CPP\"\n  \"on.cpp\"\n  \"unset.cpp\"\n  \"off.h\"\n  \"off.mm\"\n" +
		")\n" +
		"set_source_files_properties(\n" +
		"  \"${JUCER_PROJECT_DIR}/off.cpp\"\n" +
		"  \"${JUCER_PROJECT_DIR}/OFF.CPP\"\n" +
		"  PROPERTIES HEADER_FILE_ONLY TRUE\n" +
		")\n\n"
	assert.Equal(t, expected, render(units))
}

func TestFlatten_ResourcesOnly(t *testing.T) {
	g := mainGroup(t, `<MAINGROUP name="Res"><FILE file="a.png" resource="1"/><FILE file="b.wav" resource="1"/></MAINGROUP>`)

	assert.Equal(t, "jucer_project_resources(\"Res\"\n  \"a.png\"\n  \"b.wav\"\n)\n\n", render(Flatten(g)))
}

func TestFlatten_PreservesSiblingOrder(t *testing.T) {
	permutations := [][]string{
		{"a.cpp", "b.cpp", "c.cpp"},
		{"c.cpp", "a.cpp", "b.cpp"},
		{"b.cpp", "c.cpp", "a.cpp"},
	}

	for _, files := range permutations {
		t.Run(strings.Join(files, ","), func(t *testing.T) {
			var sb strings.Builder
			sb.WriteString(`<MAINGROUP name="G">`)
			for _, f := range files {
				sb.WriteString(`<FILE file="` + f + `"/>`)
			}
			sb.WriteString(`</MAINGROUP>`)

			units := Flatten(mainGroup(t, sb.String()))
			require.Len(t, units, 1)
			assert.Equal(t, files, units[0].Sources)
		})
	}
}

func TestFlatten_NilAndEmpty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten(mainGroup(t, `<MAINGROUP name="Nothing"><GROUP name="Still nothing"/></MAINGROUP>`)))
	assert.Equal(t, "", render(nil))
}
