// SPDX-License-Identifier: MPL-2.0

package issue

import "github.com/charmbracelet/glamour"

// Id identifies a guidance document.
type Id int

const (
	// NoEnvironmentsFoundId is shown when every enumerator came back empty.
	NoEnvironmentsFoundId Id = iota + 1
	// NoMatchFoundId is shown when a query matched no candidate.
	NoMatchFoundId
)

// Guidance is a user-facing markdown document for a recurring situation.
type Guidance struct {
	id    Id
	mdMsg string
}

// Render returns the document rendered for the terminal.
func (g *Guidance) Render() (string, error) {
	return glamour.Render(g.mdMsg, "auto")
}

// Markdown returns the raw document, for non-TTY output.
func (g *Guidance) Markdown() string {
	return g.mdMsg
}

var (
	noEnvironmentsFound = &Guidance{
		id: NoEnvironmentsFoundId,
		mdMsg: `
# No Python environments found

venvctl looked in every configured source and found nothing.

## Search locations (in order):
1. The project root and current directory (directories with a pyvenv.cfg)
2. The configured venvs root (` + "`venvs_path`" + `, default ~/.virtualenvs)
3. The conda installation referenced by $CONDA_EXE
4. $PYENV_ROOT/versions

## Things you can try:
- Create a virtualenv next to your project:
~~~
$ python -m venv .venv
~~~
- Or point venvctl at your environments:
~~~
$ venvctl config init
# then set venvs_path in the written file
~~~`,
	}

	noMatchFound = &Guidance{
		id: NoMatchFoundId,
		mdMsg: `
# No matching environment

The query matched none of the discovered environments, not even fuzzily.

## Things you can try:
- List what venvctl can see:
~~~
$ venvctl list
~~~
- Pick interactively:
~~~
$ venvctl pick
~~~`,
	}

	guidanceById = map[Id]*Guidance{
		NoEnvironmentsFoundId: noEnvironmentsFound,
		NoMatchFoundId:        noMatchFound,
	}
)

// Lookup returns the guidance document for id, or nil when none exists.
func Lookup(id Id) *Guidance {
	return guidanceById[id]
}
