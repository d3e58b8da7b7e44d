package cli

import (
	"flag"
	"fmt"
)

// parseFlags разбирает флаги команды в любом месте среди аргументов,
// чтобы "delete 42 --yes" работал так же, как "delete --yes 42".
// Возвращает позиционные аргументы в исходном порядке.
func parseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		// После "--" все аргументы позиционные
		if len(rest) < len(args) && args[len(args)-len(rest)-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}
