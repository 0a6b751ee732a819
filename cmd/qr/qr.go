package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	qr "github.com/unixdj/qrgen"
	"github.com/unixdj/qrgen/coding"
)

var g = struct {
	config
	fn      string // filename
	format  int    // output file format
	sjis    bool   // Shift JIS input
	latin1  bool   // Latin-1 input
	utf16   bool   // UTF-16 input
	upper   bool   // uppercase
	debug   bool   // debug log
	summary bool   // print summary
}{}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Text is encoded as UTF-8 in byte mode.  Defaults
are read from the environment and from .env: QR_LEVEL, QR_MIN_VERSION,
QR_MAX_VERSION, QR_QUIET, QR_SCALE, QR_FORMAT.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 1.0.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{"png", "pbm", "utf8", "utf8i", "ascii"}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	func(c *qr.Code, w io.Writer) error {
		_, err := io.WriteString(w, c.Text(false))
		return err
	},
	func(c *qr.Code, w io.Writer) error {
		_, err := io.WriteString(w, c.Text(true))
		return err
	},
	func(c *qr.Code, w io.Writer) error {
		_, err := io.WriteString(w, c.ASCII())
		return err
	},
}

func parseFlags() {
	cfg, err := loadConfig(".env", env.ToMap(os.Environ()))
	if err != nil {
		log.Fatalln(err)
	}
	g.config = cfg

	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.Level, 'l',
		"error correction level, lowest to highest", "l|m|q|h")
	getopt.Flag(&g.Min, 'v', "minimum QR version", "ver")
	getopt.Flag(&g.Max, 'x', "maximum QR version", "ver")
	getopt.Flag(&g.Border, 'm', "quiet zone modules", "margin")
	getopt.Flag(&g.Scale, 's', `image pixels per QR module; `+
		`ignored for types utf8[i] and ascii`, "scale")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(&g.sjis, 'k', "Shift JIS input")
	getopt.Flag(&g.latin1, '1', "Latin-1 input")
	getopt.Flag(&g.utf16, 'u', "UTF-16 standard input, "+
		"big endian unless it starts with a byte order mark")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.debug, 'd', "log version search and mask selection")
	getopt.Flag(&g.summary, 'c', "print a summary to standard error")
	ff := getopt.Enum('t', formats, g.Format, `output format, one of: `+
		strings.Join(formats, ", ")+
		`; utf8i has colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	n := 0
	for _, v := range []bool{g.sjis, g.latin1, g.utf16} {
		if v {
			n++
		}
	}
	if n > 1 {
		fmt.Fprintln(os.Stderr, "-k, -1 and -u are incompatible")
		usage()
	}
	if g.utf16 && len(getopt.Args()) != 0 {
		fmt.Fprintln(os.Stderr, "-u reads standard input only")
		usage()
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	g.format = -1
	for i, v := range formats {
		if *ff == v {
			g.format = i
			break
		}
	}
	if g.format < 0 {
		log.Fatalf("%q: unknown output format", *ff)
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var seg coding.Segment
	if g.utf16 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalln(err)
		}
		seg, err = coding.UTF16Segment(trimUnits(utf16Units(b)))
		if err != nil {
			log.Fatalln(err)
		}
	} else {
		s, err := input()
		if err != nil {
			log.Fatalln(err)
		}
		if seg, err = coding.NewSegment(s); err != nil {
			log.Fatalln(err)
		}
	}

	opts := []qr.Option{
		qr.WithVersions(g.Min, g.Max),
		qr.WithQuietZone(g.Border),
		qr.WithScale(g.Scale),
	}
	if g.debug {
		opts = append(opts, qr.WithLogger(slog.New(
			slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	c, err := qr.EncodeSegment(seg, qr.Level(g.Level), opts...)
	if err != nil {
		log.Fatalln(err)
	}
	if g.summary {
		printSummary(os.Stderr, c, seg.Len())
	}
	write(c)
}

// input returns the text from the command line or standard input,
// converted to UTF-8.
func input() (string, error) {
	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			return "", err
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	var err error
	switch {
	case g.sjis:
		s, err = japanese.ShiftJIS.NewDecoder().String(s)
	case g.latin1:
		s, err = charmap.ISO8859_1.NewDecoder().String(s)
	}
	if err != nil {
		return "", err
	}
	if g.upper {
		s = strings.ToUpper(s)
	}
	return s, nil
}

// utf16Units splits b into UTF-16 code units, big endian unless b
// starts with a little endian byte order mark.  A byte order mark is
// dropped.
func utf16Units(b []byte) []uint16 {
	var order binary.ByteOrder = binary.BigEndian
	switch {
	case bytes.HasPrefix(b, []byte{0xfe, 0xff}):
		b = b[2:]
	case bytes.HasPrefix(b, []byte{0xff, 0xfe}):
		order = binary.LittleEndian
		b = b[2:]
	}
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = order.Uint16(b[2*i:])
	}
	return u
}

// trimUnits strips the final newline from u, and uppercases ASCII
// letters if asked to.
func trimUnits(u []uint16) []uint16 {
	if n := len(u); n > 0 && u[n-1] == '\n' {
		u = u[:n-1]
		if n > 1 && u[n-2] == '\r' {
			u = u[:n-2]
		}
	}
	if g.upper {
		for i, v := range u {
			if 'a' <= v && v <= 'z' {
				u[i] = v - 'a' + 'A'
			}
		}
	}
	return u
}

func printSummary(w io.Writer, c *qr.Code, n int) {
	key := color.New(color.FgCyan, color.Bold)
	val := color.New(color.FgGreen)
	for _, kv := range [][2]any{
		{"version", c.Version},
		{"level", c.Level},
		{"mask", c.Mask},
		{"modules", c.Symbol().Size},
		{"bytes", n},
	} {
		key.Fprintf(w, "%-8s", kv[0])
		val.Fprintln(w, kv[1])
	}
}

func write(c *qr.Code) {
	enc := encoders[g.format]
	var err error
	if g.fn == "" {
		err = enc(c, os.Stdout)
	} else {
		err = writeFile(g.fn, c, enc)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// writeFile writes c encoded by enc to the file fn.  If encoding
// fails, the partial file is removed.
func writeFile(fn string, c *qr.Code,
	enc func(*qr.Code, io.Writer) error) error {
	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	err = enc(c, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(fn)
	}
	return err
}
