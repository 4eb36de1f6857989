// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/comn-io/comnd/auth"
	"github.com/comn-io/comnd/command/comn-cli/rpccalls"
	comnversion "github.com/comn-io/comnd/version"
)

type metadata struct {
	connect string
	signer  *rpccalls.Signer
	verbose bool
	e       io.Writer
	w       io.Writer
}

var version = comnversion.Version

const (
	defaultConnect = "127.0.0.1:2130"
	defaultOrigin  = "comn.opus.ai"
	defaultValid   = 5 * time.Minute
	clockSkew      = 30 * time.Second
)

func main() {

	app := cli.NewApp()
	app.Name = "comn-cli"
	app.Usage = "client for the comnd address, crate and coin service"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " comnd host/IP and port, `HOST:PORT`",
			EnvVar: "COMN_CONNECT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " hex private `KEY` for signing tokens and requests",
			EnvVar: "COMN_KEY",
		},
		cli.StringFlag{
			Name:   "origin, o",
			Value:  defaultOrigin,
			Usage:  " token `ORIGIN`",
			EnvVar: "COMN_ORIGIN",
		},
		cli.StringFlag{
			Name:  "scope, s",
			Value: "",
			Usage: " comma separated token `SCOPES`",
		},
		cli.DurationFlag{
			Name:  "valid",
			Value: defaultValid,
			Usage: " token lifetime `DURATION`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a new private key, nothing is stored",
			Action: runGenerate,
		},
		{
			Name:   "token",
			Usage:  "print an authorization header for the global key",
			Action: runToken,
		},
		{
			Name:      "protect",
			Usage:     "sign a request body with the global key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*JSON `TEXT` to sign",
				},
			},
			Action: runProtect,
		},
		{
			Name:      "address",
			Usage:     "look up address records",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "+`ADDRESS` to find",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "+address `NAME` to find",
				},
				cli.StringFlag{
					Name:  "public-key, p",
					Value: "",
					Usage: "+addresses controlled by hex public `KEY`",
				},
			},
			Action: runAddress,
		},
		{
			Name:  "register",
			Usage: "mint a new address controlled by the global key",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: " optional address `NAME`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "addkey",
			Usage:     "let another key control an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*`ADDRESS` to extend",
				},
				cli.StringFlag{
					Name:  "public-key, p",
					Value: "",
					Usage: "*hex public `KEY` to add",
				},
			},
			Action: runAddKey,
		},
		{
			Name:  "balance",
			Usage: "display the coin balance of an address",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " `ADDRESS` default is the first one the key controls",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "transfer",
			Usage:     "transfer coins to another address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*sending `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*whole coins to send `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "nonce, n",
					Value: "",
					Usage: " unique `NONCE` default is a random UUID",
				},
				cli.StringFlag{
					Name:  "comment, m",
					Value: "",
					Usage: " `TEXT` stored with the history entries",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "history",
			Usage:     "list the transfer history of an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*`ADDRESS` to list",
				},
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " continue after `START` from a previous page",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runHistory,
		},
		{
			Name:      "create",
			Usage:     "create a crate",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owning `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*crate `NAME`",
				},
				cli.StringFlag{
					Name:  "comment, m",
					Value: "",
					Usage: " crate `COMMENT`",
				},
				cli.StringFlag{
					Name:  "expires, e",
					Value: "",
					Usage: " RFC3339 expiry `TIME`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "put",
			Usage:     "store an item in a crate, the token scope must start with crate_write",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "crate, c",
					Value: "",
					Usage: "*crate `UUID`",
				},
				cli.StringFlag{
					Name:  "path, p",
					Value: "",
					Usage: "*item `PATH`",
				},
				cli.StringFlag{
					Name:  "media-type, t",
					Value: "application/json",
					Usage: " item `MEDIA-TYPE`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*item `JSON`",
				},
				cli.StringFlag{
					Name:  "as",
					Value: "",
					Usage: " act for this controlled `ADDRESS`",
				},
			},
			Action: runPut,
		},
		{
			Name:      "grant",
			Usage:     "give an address access to a crate",
			ArgsUsage: "\n   (* = required)",
			Flags:     grantFlags(true),
			Action:    runGrant,
		},
		{
			Name:      "revoke",
			Usage:     "remove an address's access to a crate",
			ArgsUsage: "\n   (* = required)",
			Flags:     grantFlags(false),
			Action:    runRevoke,
		},
		{
			Name:   "info",
			Usage:  "display comnd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display comn-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		key := strings.TrimSpace(c.GlobalString("key"))
		if "" != key {
			privateKey, err := auth.PrivateKeyFromHex(key)
			if nil != err {
				return fmt.Errorf("key: %s", err)
			}
			m.signer = &rpccalls.Signer{
				Key:    privateKey,
				Origin: c.GlobalString("origin"),
				Scopes: scopes(c.GlobalString("scope")),
				Valid:  c.GlobalDuration("valid"),
				Skew:   clockSkew,
			}
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
			if nil != m.signer {
				fmt.Fprintf(m.e, "public key: %s\n", auth.PublicKeyHex(m.signer.Key.PubKey()))
			}
		}

		c.App.Metadata["config"] = m
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func grantFlags(expiry bool) []cli.Flag {
	flags := []cli.Flag{
		cli.StringFlag{
			Name:  "crate, c",
			Value: "",
			Usage: "*crate `UUID`",
		},
		cli.StringFlag{
			Name:  "address, a",
			Value: "",
			Usage: "*grantee `ADDRESS`",
		},
		cli.StringFlag{
			Name:  "type, t",
			Value: "",
			Usage: "*access `TYPE` [owner|admin|editor|reader|writer]",
		},
		cli.StringFlag{
			Name:  "as",
			Value: "",
			Usage: " act for this controlled `ADDRESS`",
		},
	}
	if expiry {
		flags = append(flags, cli.StringFlag{
			Name:  "expires, e",
			Value: "",
			Usage: " RFC3339 expiry `TIME`",
		})
	}
	return flags
}
