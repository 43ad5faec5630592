package object

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Signature identifies the author or committer of a commit. When carries
// the zone offset recorded in the object body, so rendering it reproduces
// the offset the commit was written with.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// String renders the signature the way the body encodes it, minus the
// epoch and offset fields: "name <email>".
func (s Signature) String() string {
	return s.Name + " <" + s.Email + ">"
}

// parseCommit decodes a commit body. Header lines arrive in a fixed order:
// one tree line, zero or more parent lines, author, committer, then a
// blank separator and the free-text message.
func parseCommit(r *Reader) (*Commit, error) {
	tok, err := r.ReadToken(' ')
	if err != nil {
		return nil, err
	}
	if tok != "tree" {
		return nil, fmt.Errorf("commit field %q, want \"tree\": %w", tok, ErrMalformed)
	}

	treeHash, err := r.ReadToken('\n')
	if err != nil {
		return nil, err
	}
	c := &Commit{TreeHash: Hash(treeHash)}
	if !c.TreeHash.Valid() {
		return nil, fmt.Errorf("commit tree hash %q: %w", treeHash, ErrMalformed)
	}

	// A root commit has no parent lines; the token after the tree line is
	// then already "author".
	tok, err = r.ReadToken(' ')
	if err != nil {
		return nil, err
	}
	for tok == "parent" {
		p, err := r.ReadToken('\n')
		if err != nil {
			return nil, err
		}
		if !Hash(p).Valid() {
			return nil, fmt.Errorf("commit parent hash %q: %w", p, ErrMalformed)
		}
		c.Parents = append(c.Parents, Hash(p))

		tok, err = r.ReadToken(' ')
		if err != nil {
			return nil, err
		}
	}

	if tok != "author" {
		return nil, fmt.Errorf("commit field %q, want \"author\": %w", tok, ErrMalformed)
	}
	if c.Author, err = parseSignature(r); err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}

	tok, err = r.ReadToken(' ')
	if err != nil {
		return nil, err
	}
	if tok != "committer" {
		return nil, fmt.Errorf("commit field %q, want \"committer\": %w", tok, ErrMalformed)
	}
	if c.Committer, err = parseSignature(r); err != nil {
		return nil, fmt.Errorf("committer: %w", err)
	}

	// The blank header/body separator is dropped along with any other
	// blank lines; the remaining lines joined with newlines form the
	// message.
	var lines []string
	for r.More() {
		line, err := r.ReadToken('\n')
		if err != nil {
			return nil, err
		}
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	c.Message = strings.Join(lines, "\n")

	return c, nil
}

// parseSignature reads the fields that follow an "author" or "committer"
// token: name, bracketed email, epoch seconds, and a zone offset that
// terminates the line.
func parseSignature(r *Reader) (Signature, error) {
	name, err := r.ReadToken(' ')
	if err != nil {
		return Signature{}, err
	}

	email, err := r.ReadToken(' ')
	if err != nil {
		return Signature{}, err
	}
	if len(email) < 2 || email[0] != '<' || email[len(email)-1] != '>' {
		return Signature{}, fmt.Errorf("email %q: %w", email, ErrMalformed)
	}
	email = email[1 : len(email)-1]

	epochTok, err := r.ReadToken(' ')
	if err != nil {
		return Signature{}, err
	}
	epoch, err := strconv.ParseInt(epochTok, 10, 64)
	if err != nil {
		return Signature{}, fmt.Errorf("timestamp %q: %w", epochTok, ErrMalformed)
	}

	offTok, err := r.ReadToken('\n')
	if err != nil {
		return Signature{}, err
	}
	loc, err := parseZoneOffset(offTok)
	if err != nil {
		return Signature{}, err
	}

	return Signature{
		Name:  name,
		Email: email,
		When:  time.Unix(epoch, 0).In(loc),
	}, nil
}

// parseZoneOffset accepts the +HHMM form Git writes along with the +HH:MM
// and +HH variants. The epoch value is offset-independent; the offset only
// affects how the instant renders.
func parseZoneOffset(tok string) (*time.Location, error) {
	if len(tok) < 3 || (tok[0] != '+' && tok[0] != '-') {
		return nil, fmt.Errorf("zone offset %q: %w", tok, ErrMalformed)
	}

	digits := strings.Replace(tok[1:], ":", "", 1)
	var hh, mm string
	switch len(digits) {
	case 2:
		hh, mm = digits, "0"
	case 4:
		hh, mm = digits[:2], digits[2:]
	default:
		return nil, fmt.Errorf("zone offset %q: %w", tok, ErrMalformed)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil {
		return nil, fmt.Errorf("zone offset %q: %w", tok, ErrMalformed)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes > 59 {
		return nil, fmt.Errorf("zone offset %q: %w", tok, ErrMalformed)
	}

	sec := hours*3600 + minutes*60
	if tok[0] == '-' {
		sec = -sec
	}
	return time.FixedZone(tok, sec), nil
}
