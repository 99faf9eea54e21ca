package cipher

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/logging"
	"github.com/sergeii/enigma/internal/validation"
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/slice"
	"github.com/sergeii/enigma/pkg/textutils"
)

var ErrInvalidSetting = errors.New("invalid machine setting")

// Settings is the validated form of the command line flags.
type Settings struct {
	Rotors    []string `validate:"len=3,dive,rotor"`
	Positions []int    `validate:"len=3,dive,gte=0,lte=25"`
	Rings     []int    `validate:"len=3,dive,gte=0,lte=25"`
	Reflector string   `validate:"required,reflector"`
	Plugs     []string `validate:"max=13,dive,len=2"`
	Fold      bool
}

type Cipher struct {
	machine *enigma.Machine
	fold    bool
	logger  *zerolog.Logger
}

func New(validate *validator.Validate, settings Settings, logger *zerolog.Logger) (*Cipher, error) {
	if err := validate.Struct(settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}

	specs := make([]enigma.RotorSpec, 0, len(settings.Rotors))
	for i, name := range settings.Rotors {
		specs = append(specs, enigma.RotorSpec{
			Name:        enigma.RotorName(name),
			Position:    settings.Positions[i],
			RingSetting: settings.Rings[i],
		})
	}

	machine, err := enigma.New(enigma.Config{
		Rotors:    specs,
		Reflector: enigma.ReflectorName(settings.Reflector),
	})
	if err != nil {
		return nil, err
	}

	for _, plug := range settings.Plugs {
		letters := []rune(plug)
		a, okA := enigma.ParseLetter(string(letters[0]))
		b, okB := enigma.ParseLetter(string(letters[1]))
		if !okA || !okB {
			return nil, fmt.Errorf("%w: plug %q", ErrInvalidSetting, plug)
		}
		if err := machine.AddPlugboardPair(a, b); err != nil {
			return nil, err
		}
	}

	logger.Debug().Stringer("machine", settingsView(machine.Settings())).Msg("Machine is set up")

	return &Cipher{
		machine: machine,
		fold:    settings.Fold,
		logger:  logger,
	}, nil
}

// Encrypt runs every message through the machine starting from the initial rotor positions.
func (c *Cipher) Encrypt(text string) string {
	if c.fold {
		text = textutils.Fold(text)
	}
	return c.machine.EncryptMessage(text)
}

// Execute encrypts the words joined into a single message,
// or each line of in when no words are given.
func (c *Cipher) Execute(words []string, in io.Reader, out io.Writer) error {
	if len(words) > 0 {
		_, err := fmt.Fprintln(out, c.Encrypt(strings.Join(words, " ")))
		return err
	}

	lines := 0
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, c.Encrypt(scanner.Text())); err != nil {
			return err
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		c.logger.Error().Err(err).Int("lines", lines).Msg("Failed to read input")
		return err
	}
	c.logger.Debug().Int("lines", lines).Msg("Input exhausted")
	return nil
}

type settingsView enigma.Settings

func (v settingsView) String() string {
	rotors := slice.Map(v.Rotors, func(r enigma.RotorSettings) string {
		return fmt.Sprintf("%s@%d/%d", r.Name, r.Position, r.RingSetting)
	})
	pairs := slice.Map(v.Plugboard, func(p enigma.Pair) string {
		return p.String()
	})
	return fmt.Sprintf("%s %s [%s]", strings.Join(rotors, " "), v.Reflector, strings.Join(pairs, " "))
}

// ParseSetting accepts either a number in the 0-25 range or a letter,
// where A stands for 0.
func ParseSetting(s string) (int, error) {
	s = strings.TrimSpace(s)
	if letter, ok := enigma.ParseLetter(s); ok {
		return int(letter - 'A'), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is neither a letter nor a number", ErrInvalidSetting, s)
	}
	return n, nil
}

func parseSettings(values []string) ([]int, error) {
	parsed := make([]int, 0, len(values))
	for _, v := range values {
		n, err := ParseSetting(v)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, n)
	}
	return parsed, nil
}

type command struct {
	Rotors    []string `default:"I,II,III" help:"Sets the rotors from left to right"`
	Positions []string `default:"A,A,A"    help:"Sets the initial rotor positions, as letters or numbers starting at 0"`    // nolint:lll
	Rings     []string `default:"A,A,A"    help:"Sets the ring settings, as letters or numbers starting at 0"`              // nolint:lll
	Reflector string   `default:"B"        help:"Sets the reflector"`
	Plug      []string `short:"p"          help:"Connects a pair of letters on the plugboard, such as AB (repeatable)"` // nolint:lll
	Fold      bool     `default:"false"    help:"Replaces accented letters with their base letter before encryption"`

	Text []string `arg:"" help:"Text to encrypt, read line by line from stdin when omitted" optional:""`
}

func (c *command) Run(globals *commander.Globals) error {
	// stdout is reserved for the output
	logger, _, err := logging.New(logging.Config{
		LogOutput: "stderr",
		LogLevel:  globals.LogLevel,
	})
	if err != nil {
		return err
	}

	validate, err := validation.New()
	if err != nil {
		return err
	}

	positions, err := parseSettings(c.Positions)
	if err != nil {
		return err
	}
	rings, err := parseSettings(c.Rings)
	if err != nil {
		return err
	}

	cipher, err := New(validate, Settings{
		Rotors:    slice.Map(c.Rotors, strings.ToUpper),
		Positions: positions,
		Rings:     rings,
		Reflector: strings.ToUpper(c.Reflector),
		Plugs:     c.Plug,
		Fold:      c.Fold || globals.SessionFoldText,
	}, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up the machine")
		return err
	}

	return cipher.Execute(c.Text, os.Stdin, os.Stdout)
}

type CLI struct {
	Cipher command `cmd:"" help:"Encrypt messages from the command line"`
}
