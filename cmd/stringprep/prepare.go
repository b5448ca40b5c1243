package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/nihei9/stringprep/prep"
	"github.com/nihei9/stringprep/saslprep"
	"github.com/nihei9/stringprep/sink"
	"github.com/spf13/cobra"
)

var prepareFlags = struct {
	profile *string
	hex     *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "prepare [string]",
		Short:   "Prepare a string under a profile and print the UTF-8 result",
		Example: `  stringprep prepare -p scram-username 'mac,donald=x'`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runPrepare,
	}
	prepareFlags.profile = cmd.Flags().StringP("profile", "p", "saslprep", "preparation profile (saslprep, scram-username, none)")
	prepareFlags.hex = cmd.Flags().BoolP("hex", "x", false, "print the result as hexadecimal bytes")
	rootCmd.AddCommand(cmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	var src string
	if len(args) > 0 {
		src = args[0]
	} else {
		b, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		src = strings.TrimSuffix(string(b), "\n")
	}

	var profile prep.Profile
	switch *prepareFlags.profile {
	case "saslprep":
		profile = saslprep.Profile
	case "scram-username":
		profile = saslprep.SCRAMUsernameProfile
	case "none":
		profile = 0
	default:
		return fmt.Errorf("unknown profile: %v", *prepareFlags.profile)
	}

	var b sink.Buffer
	if err := prep.Encode(&b, src, profile); err != nil {
		return err
	}
	if *prepareFlags.hex {
		fmt.Printf("% X\n", b.Bytes())
		return nil
	}
	fmt.Printf("%s\n", b.Bytes())
	return nil
}
