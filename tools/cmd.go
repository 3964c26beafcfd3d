package tools

import "github.com/spf13/cobra"

var toolDump = Dump{}
var CmdDump = &cobra.Command{
	GroupID: "tools",
	Use:     "dump [file]",
	Short:   "Decode and print ccnb documents",
	Long: `Decode every ccnb document of a file or the standard input.
Each document is summarized; --tape also prints its element tape.`,
	Args:    cobra.MaximumNArgs(1),
	Example: `  ndnx dump --tape capture.ccnb`,
	Run:     toolDump.run,
}

var toolUri = UriTool{}
var CmdUri = &cobra.Command{
	GroupID: "tools",
	Use:     "uri",
	Short:   "Convert name components to and from URI text",
}

var cmdUriEncode = &cobra.Command{
	Use:     "encode value",
	Short:   "Print the URI form of a component value",
	Args:    cobra.ExactArgs(1),
	Example: `  ndnx uri encode --hex 00ff41`,
	Run:     toolUri.encode,
}

var cmdUriDecode = &cobra.Command{
	Use:     "decode uri",
	Short:   "Print the value of a component URI in hex",
	Args:    cobra.ExactArgs(1),
	Example: `  ndnx uri decode %00%FFA`,
	Run:     toolUri.decode,
}

var toolName = NameTool{}
var CmdName = &cobra.Command{
	GroupID: "tools",
	Use:     "name uri",
	Short:   "Print a name URI in canonical form",
	Args:    cobra.ExactArgs(1),
	Example: `  ndnx name ccnx://host/a/./b/../c`,
	Run:     toolName.run,
}

var toolPeek = Peek{}
var CmdPeek = &cobra.Command{
	GroupID: "tools",
	Use:     "peek name",
	Short:   "Fetch one ContentObject under a name",
	Long: `Express an Interest for a name and write the content of the
first matching ContentObject to stdout.`,
	Args:    cobra.ExactArgs(1),
	Example: `  ndnx peek ccnx:/parc.com/videos -r > latest.bin`,
	Run:     toolPeek.run,
}

func init() {
	CmdDump.Flags().BoolVarP(&toolDump.tape, "tape", "t", false, "print the element tape of each document")
	CmdDump.Flags().IntVar(&toolDump.maxSize, "max-size", 0, "largest accepted document, in bytes")

	cmdUriEncode.Flags().BoolVar(&toolUri.hex, "hex", false, "value is given in hex")
	CmdUri.AddCommand(cmdUriEncode)
	CmdUri.AddCommand(cmdUriDecode)

	CmdName.Flags().BoolVarP(&toolName.wire, "wire", "w", false, "also print the encoded name in hex")

	CmdPeek.Flags().StringVar(&toolPeek.transport, "transport", "", "transport URI, e.g. tcp://127.0.0.1:9695")
	CmdPeek.Flags().IntVarP(&toolPeek.lifetime, "lifetime", "l", 4000, "Interest lifetime, in milliseconds")
	CmdPeek.Flags().BoolVarP(&toolPeek.rightmost, "rightmost", "r", false, "prefer the last matching object")
	CmdPeek.Flags().BoolVarP(&toolPeek.verbose, "verbose", "v", false, "print statistics to stderr")
}
