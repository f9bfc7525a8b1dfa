package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
)

type editCmd struct{}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit the portfolio interactively" }
func (*editCmd) Usage() string {
	return `folio edit

  Opens an interactive prompt on the portfolio. Mutations stay in memory
  until "save"; "undo" reverts the last mutation. Type "help" at the
  prompt for the line syntax.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {}

const editHelp = `Commands:
  buy <ticker> <qty> <price> [fees] [date]
  sell <ticker> <qty> <price> [fees] [date]
  dividend <ticker> <amount> [date]
  deposit <amount> [date]
  withdraw <amount> [date]
  fee <amount> [ticker] [date]
  price <ticker> <price>
  rm <index>
  undo
  tx | holding | summary
  save
  quit
`

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rl, err := readline.New("folio> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening prompt: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	dirty := false
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			if dirty {
				fmt.Println("unsaved changes, save or undo them first (or press Ctrl-D to discard)")
				continue
			}
			return subcommands.ExitSuccess
		case "save":
			if status := SaveSession(s); status != subcommands.ExitSuccess {
				return status
			}
			dirty = false
			fmt.Println("saved")
		case "undo":
			if s.Undo() {
				fmt.Println("undone")
			} else {
				fmt.Println("nothing to undo")
			}
		case "tx":
			fmt.Print(renderer.Transactions(s.Ledger()))
		case "holding":
			fmt.Print(renderer.Holdings(s.Ledger()))
		case "summary":
			fmt.Print(renderer.Summary(s.Ledger()))
		case "help":
			fmt.Print(editHelp)
		default:
			if err := editLine(s, fields); err != nil {
				fmt.Println(err)
				continue
			}
			dirty = true
		}
	}
	if dirty {
		fmt.Println("discarding unsaved changes")
	}
	return subcommands.ExitSuccess
}

// editLine applies one mutating prompt line to the session.
func editLine(s *folio.Session, fields []string) error {
	args := fields[1:]
	switch fields[0] {
	case "buy", "sell":
		if len(args) < 3 {
			return fmt.Errorf("usage: %s <ticker> <qty> <price> [fees] [date]", fields[0])
		}
		kind := folio.Buy
		if fields[0] == "sell" {
			kind = folio.Sell
		}
		tx := folio.Transaction{Ticker: args[0], Type: kind, Date: folio.Today()}
		var err error
		if tx.Quantity, err = parseAmount("quantity", args[1]); err != nil {
			return err
		}
		if tx.Price, err = parseAmount("price", args[2]); err != nil {
			return err
		}
		if len(args) > 3 {
			if tx.Fees, err = parseAmount("fees", args[3]); err != nil {
				return err
			}
		}
		if len(args) > 4 {
			if tx.Date, err = folio.ParseDate(args[4]); err != nil {
				return err
			}
		}
		return s.AddTransaction(tx)
	case "dividend":
		if len(args) < 2 {
			return fmt.Errorf("usage: dividend <ticker> <amount> [date]")
		}
		tx := folio.Transaction{Ticker: args[0], Type: folio.Dividend, Date: folio.Today()}
		var err error
		if tx.Quantity, err = parseAmount("amount", args[1]); err != nil {
			return err
		}
		if len(args) > 2 {
			if tx.Date, err = folio.ParseDate(args[2]); err != nil {
				return err
			}
		}
		return s.AddTransaction(tx)
	case "deposit", "withdraw", "fee":
		if len(args) < 1 {
			return fmt.Errorf("usage: %s <amount> ...", fields[0])
		}
		var kind folio.TxType
		switch fields[0] {
		case "deposit":
			kind = folio.Deposit
		case "withdraw":
			kind = folio.Withdraw
		case "fee":
			kind = folio.Fees
		}
		tx := folio.Transaction{Ticker: folio.CashTicker, Type: kind, Date: folio.Today()}
		var err error
		if tx.Quantity, err = parseAmount("amount", args[0]); err != nil {
			return err
		}
		rest := args[1:]
		if fields[0] == "fee" && len(rest) > 0 {
			if _, err := folio.ParseDate(rest[0]); err != nil {
				tx.Ticker = rest[0]
				rest = rest[1:]
			}
		}
		if len(rest) > 0 {
			if tx.Date, err = folio.ParseDate(rest[0]); err != nil {
				return err
			}
		}
		return s.AddTransaction(tx)
	case "price":
		if len(args) != 2 {
			return fmt.Errorf("usage: price <ticker> <price>")
		}
		price, err := parseAmount("price", args[1])
		if err != nil {
			return err
		}
		return s.SetPrice(args[0], price)
	case "rm":
		if len(args) != 1 {
			return fmt.Errorf("usage: rm <index>")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index %q is not a number", args[0])
		}
		return s.RemoveTransaction(i)
	default:
		return fmt.Errorf("unknown command %q, try help", fields[0])
	}
}
