package dump

import (
	"fmt"
	"io"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/birdayz/cxxd/pkg/app"
	pkgdump "github.com/birdayz/cxxd/pkg/dump"
)

// Long is the help text of the root command, which runs the dump.
const Long = `Make a hex dump of FILE, or convert a hex dump back into binary with -r.

Each output line holds the offset of its first byte, the bytes in hex grouped
by --group-size and their printable ASCII rendering:

  00000000: 6865 6c6c 6f20 776f 726c 64  hello world

FILE defaults to standard input, OUTFILE to standard output. Either may be '-'.
Settings from the active profile (see "cxxd config") apply unless overridden
by a flag.`

// Example lists typical invocations of the root command.
const Example = `  cxxd /bin/ls
  cxxd -c 8 -g 1 data.bin
  cxxd -e data.bin
  cxxd -s -64 data.bin
  cxxd -s 0x10 -l 32 data.bin
  cxxd data.bin | cxxd -r > copy.bin
  cxxd --output json-each-row data.bin`

// RunE returns the run function of the root command.
func RunE(a *app.App, o *Options) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		settings, err := o.Resolve(cmd, a.CurrentProfile)
		if err != nil {
			return err
		}

		var inPath, outPath string
		if len(args) > 0 {
			inPath = args[0]
		}
		if len(args) > 1 {
			outPath = args[1]
		}

		if o.Revert {
			return revert(a, inPath, outPath)
		}

		data, err := readInput(a, inPath)
		if err != nil {
			return err
		}

		if isStdio(outPath) {
			out := a.OutWriter
			settings.Render.Color = a.UseColor(settings.Color)
			if settings.Render.Color {
				out = a.ColorableOut
			}
			return a.RenderDump(cmd.Context(), out, data, settings.Dump, settings.Render)
		}

		settings.Render.Color = settings.Color == app.ColorModeAlways
		return writeFile(outPath, func(w io.Writer) error {
			return a.RenderDump(cmd.Context(), w, data, settings.Dump, settings.Render)
		})
	}
}

func revert(a *app.App, inPath, outPath string) error {
	in, err := openInput(a, inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := pkgdump.Decode(in)
	if err != nil {
		return fmt.Errorf("revert %s: %w", displayName(inPath), err)
	}
	a.Logf("decoded %d bytes from %s", len(data), displayName(inPath))

	if isStdio(outPath) {
		if _, err := a.OutWriter.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	return writeFile(outPath, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func isStdio(path string) bool {
	return path == "" || path == "-"
}

func displayName(path string) string {
	if isStdio(path) {
		return "stdin"
	}
	return path
}

func openInput(a *app.App, path string) (io.ReadCloser, error) {
	if isStdio(path) {
		return io.NopCloser(a.InReader), nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand input path: %w", err)
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func readInput(a *app.App, path string) ([]byte, error) {
	in, err := openInput(a, path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", displayName(path), err)
	}
	return data, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expand output path: %w", err)
	}
	f, err := os.Create(expanded)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
