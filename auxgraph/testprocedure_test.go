package auxgraph_test

// stringProc is a minimal auxgraph.Procedure[string] used across this
// package's tests: blocks are plain strings, Name is the identity.
type stringProc struct {
	entry string
	succs map[string][]string
	fake  int
}

func (p *stringProc) Entry() string            { return p.entry }
func (p *stringProc) Succs(b string) []string   { return p.succs[b] }
func (p *stringProc) Name(b string) string      { return b }
func (p *stringProc) NewFakeExit() string {
	p.fake++
	if p.fake == 1 {
		return "fake.exit"
	}
	return "fake.exit#2" // guards against Init being called twice on one proc
}
