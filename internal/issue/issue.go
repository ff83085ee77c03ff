// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	UnknownFormatId
	UnknownABIId
	InvalidArchId
	SizeInvariantId
	CompileFailedId
	OutputWriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // psABI sections that explain the background
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Markdown returns the issue text with its "See also" section.
func (i *Issue) Markdown() string {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return md
}

// Render renders the issue for the terminal with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

const psabiDoc HttpLink = "https://github.com/riscv-non-isa/riscv-elf-psabi-doc"

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Could not load the configuration!

The configuration file named with --config could not be loaded, so psabigen
stopped before generating anything.

## Things you can try:
- Show the configuration psabigen would use:
~~~
$ psabigen config show
~~~
- Write a fresh default configuration:
~~~
$ psabigen config init
~~~
- Check the values against the schema:
~~~cue
output: {
	format: "asciidoc" // markdown, preview, table, toml, cue
	notes:  false
	tuples: true
}
sanity: {
	abi: "lp64d"
}
~~~`,
	}

	unknownFormatIssue = &Issue{
		id: UnknownFormatId,
		mdMsg: `
# Unknown output format!

## Supported formats:
- ` + "`asciidoc`" + ` (default) - the tables as they appear in the psABI document
- ` + "`markdown`" + ` - GitHub pipe tables
- ` + "`preview`" + ` - Markdown rendered for the terminal
- ` + "`table`" + ` - bordered terminal tables
- ` + "`toml`" + `, ` + "`cue`" + ` - structured exports`,
	}

	unknownABIIssue = &Issue{
		id: UnknownABIId,
		mdMsg: `
# Unknown ABI!

## Supported ABIs:
- ilp32, ilp32e, ilp32f, ilp32d
- lp64, lp64f, lp64d

~~~
$ psabigen scalar --abi lp64d
~~~`,
		docLinks: []HttpLink{psabiDoc},
	}

	invalidArchIssue = &Issue{
		id: InvalidArchId,
		mdMsg: `
# The architecture string cannot host this ABI!

The ISA string must start with rv32 or rv64, use the i, e or g base, and
provide the floating-point registers the ABI passes arguments in:

- *f ABIs need the F extension
- *d ABIs need the D extension
- ilp32e needs the E base

~~~
$ psabigen sanity --abi lp64d --arch rv64gc
~~~`,
		docLinks: []HttpLink{psabiDoc},
	}

	sizeInvariantIssue = &Issue{
		id: SizeInvariantId,
		mdMsg: `
# Internal error: vector size has no rendering!

A vector type's size multiplier fell outside the fractions psabigen knows
how to write. No output was produced. This is a bug in psabigen; please
report it with the full error message.`,
	}

	compileFailedIssue = &Issue{
		id: CompileFailedId,
		mdMsg: `
# The toolchain rejected the sanity checks!

The compiler either failed to run or disagrees with the psABI.

## Things you can try:
- Point CC at a RISC-V cross compiler:
~~~
$ CC=riscv64-unknown-elf-gcc psabigen sanity --compile
~~~
- Inspect the generated checks:
~~~
$ psabigen sanity --abi lp64d
~~~
- Set a custom command in your configuration:
~~~cue
sanity: {
	compile_command: "clang --target=riscv64 -march=$PSABI_ARCH -mabi=$PSABI_ABI -fsyntax-only -x c -"
}
~~~`,
		docLinks: []HttpLink{psabiDoc},
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Could not write the output!

## Things you can try:
- Check that the directory given to --output exists and is writable
- Write to stdout and redirect instead:
~~~
$ psabigen > vector-types.adoc
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		unknownFormatIssue.Id():     unknownFormatIssue,
		unknownABIIssue.Id():        unknownABIIssue,
		invalidArchIssue.Id():       invalidArchIssue,
		sizeInvariantIssue.Id():     sizeInvariantIssue,
		compileFailedIssue.Id():     compileFailedIssue,
		outputWriteFailedIssue.Id(): outputWriteFailedIssue,
	}
)

// Values returns every catalogued issue ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, iss := range issues {
		values = append(values, iss)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
