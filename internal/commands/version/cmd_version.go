package version

import (
	"fmt"
	"github.com/bokysan/base32/internal/util/enc"
	"github.com/bokysan/base32/internal/version"
	"github.com/k0kubun/go-ansi"
	"io"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the version banner
type Command struct {
}

func (i *Command) String() string {
	return "Version details"
}

//noinspection GoUnusedParameter
func (i *Command) Execute(args []string) error {
	PrintVersion(ansi.NewAnsiStdout())
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, Bold+BackgroundBlue+
		LightGray+" BASE32 - RFC 4648 codec "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
	if version.GitBranch != "" {
		fmt.Fprintf(w, DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		fmt.Fprintf(w, DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		fmt.Fprintf(w, DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	}
	fmt.Fprintf(w, DarkGray+" Encoder     "+White+"%v %v"+Reset+"\n", enc.StdEncoder, enc.StdAlphabet)
}
