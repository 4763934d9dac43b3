// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ManifestNotFoundId Id = iota + 1
	ManifestParseErrorId
	UnsupportedLayoutId
	NoPublicHeadersId
	DependencyCycleId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	manifestNotFoundIssue = &Issue{
		id: ManifestNotFoundId,
		mdMsg: `
# No modpack.cue found!

We searched for a package manifest but couldn't find one.

## Things you can try:
- Create a starter manifest in your current directory:
~~~
$ modmap init
~~~

- Or point at an existing pack:
~~~
$ modmap --manifest /path/to/pack/modpack.cue modules
~~~`,
	}

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Failed to parse modpack.cue!

Your manifest contains syntax errors or invalid configuration.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names or an unknown module kind
- A dependency that names a module not declared in the pack

## Example of a valid module declaration:
~~~cue
modules: [
	{
		name:        "Foo"
		kind:        "clang"
		include_dir: "Sources/Foo/include"
		sources: ["Sources/Foo/foo.c"]
	},
]
~~~`,
	}

	unsupportedLayoutIssue = &Issue{
		id: UnsupportedLayoutId,
		mdMsg: `
# Unsupported include directory layout!

An umbrella header coexists with sibling content it cannot account for, so
the module interface would be ambiguous. Generation fails closed rather than
guessing.

## Supported layouts:
- **Flat**: ` + "`include/<Module>.h`" + ` and no subdirectories
- **Nested**: ` + "`include/<Module>/<Module>.h`" + `, exactly one
  subdirectory and no top-level headers
- **Bare**: any other shape; the include directory itself becomes the
  umbrella

## Things you can try:
- Move stray headers under the umbrella directory
- Remove the umbrella header to fall back to the bare-directory form`,
	}

	noPublicHeadersIssue = &Issue{
		id: NoPublicHeadersId,
		mdMsg: `
# No public headers!

The module's include directory does not exist, so no module map was
generated and the module cannot be imported from host-language code.

## Things you can try:
- Create the include directory declared in modpack.cue
- Fix the ` + "`include_dir`" + ` path if it points at the wrong place`,
	}

	dependencyCycleIssue = &Issue{
		id: DependencyCycleId,
		mdMsg: `
# Dependency cycle detected!

Your module dependencies form a cycle, so no valid processing order exists.

## Things you can try:
- Review the deps fields in your modpack.cue
- Break the cycle by extracting shared code into a module both sides can
  depend on`,
	}

	issues = map[Id]*Issue{
		manifestNotFoundIssue.Id():   manifestNotFoundIssue,
		manifestParseErrorIssue.Id(): manifestParseErrorIssue,
		unsupportedLayoutIssue.Id():  unsupportedLayoutIssue,
		noPublicHeadersIssue.Id():    noPublicHeadersIssue,
		dependencyCycleIssue.Id():    dependencyCycleIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}

// Ids returns all known issue ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	return ids
}
