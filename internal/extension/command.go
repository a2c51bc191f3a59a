package extension

import "context"

// Command describes how the host should spawn the language server. The
// resolver sets only the executable path; cambridge-lsp takes no
// arguments and needs no environment of its own.
type Command struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// LanguageServerCommand resolves the binary and wraps its path in a
// spawn descriptor. This is the single product handed up to the host.
func (r *Resolver) LanguageServerCommand(ctx context.Context) (Command, error) {
	path, err := r.Resolve(ctx)
	if err != nil {
		return Command{}, err
	}
	return Command{
		Command: path,
		Args:    []string{},
		Env:     map[string]string{},
	}, nil
}
