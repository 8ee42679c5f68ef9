package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrlokans/bookshelf/internal/console"
	"github.com/mrlokans/bookshelf/internal/services"
)

// ShellCommand runs the interactive add/remove/show/find/exit loop.
type ShellCommand struct {
	manager *services.LibraryManager
	printer *console.Printer
	reader  *bufio.Reader
	logger  zerolog.Logger
}

// NewShellCommand creates a ShellCommand reading commands from in.
func NewShellCommand(manager *services.LibraryManager, printer *console.Printer, in io.Reader, logger zerolog.Logger) *ShellCommand {
	return &ShellCommand{
		manager: manager,
		printer: printer,
		reader:  bufio.NewReader(in),
		logger:  logger,
	}
}

// Run processes commands until "exit" or end of input.
func (cmd *ShellCommand) Run() error {
	commandPrompt := "Enter command (add, remove, show, exit): "
	if cmd.manager.SupportsAuthorLookup() {
		commandPrompt = "Enter command (add, remove, show, find, exit): "
	}

	for {
		line, ok, err := cmd.readLine(commandPrompt, cmd.printer.Prompt)
		if err != nil || !ok {
			return err
		}

		switch strings.ToLower(line) {
		case "add":
			err = cmd.add()
		case "remove":
			err = cmd.remove()
		case "show":
			_, err = cmd.manager.ListBooks()
		case "find":
			if !cmd.manager.SupportsAuthorLookup() {
				cmd.printer.InvalidCommand()
				continue
			}
			err = cmd.find()
		case "exit":
			cmd.printer.Goodbye()
			cmd.logger.Info().Msg("shell exited")
			return nil
		default:
			cmd.logger.Debug().Str("command", line).Msg("invalid command")
			cmd.printer.InvalidCommand()
			continue
		}

		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var errInputClosed = errors.New("input closed")

func (cmd *ShellCommand) add() error {
	fields := make([]string, 0, 3)
	for _, prompt := range []string{"Enter book title: ", "Enter book author: ", "Enter book year: "} {
		value, err := cmd.field(prompt)
		if err != nil {
			return err
		}
		fields = append(fields, value)
	}
	return cmd.manager.AddBook(fields[0], fields[1], fields[2])
}

func (cmd *ShellCommand) remove() error {
	title, err := cmd.field("Enter book title to remove: ")
	if err != nil {
		return err
	}
	return cmd.manager.RemoveBook(title)
}

func (cmd *ShellCommand) find() error {
	author, err := cmd.field("Enter author to search: ")
	if err != nil {
		return err
	}
	_, err = cmd.manager.FindBooksByAuthor(author)
	return err
}

func (cmd *ShellCommand) field(prompt string) (string, error) {
	value, ok, err := cmd.readLine(prompt, cmd.printer.FieldPrompt)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errInputClosed
	}
	return value, nil
}

// readLine prompts and returns the next trimmed line. ok is false at end of
// input. Lines have no length limit.
func (cmd *ShellCommand) readLine(prompt string, show func(string)) (string, bool, error) {
	show(prompt)
	line, err := cmd.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
	}
	return strings.TrimSpace(line), true, nil
}
