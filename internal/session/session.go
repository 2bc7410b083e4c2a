// Package session implements the interactive menu over one song store and vocabulary.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/gdql/songsim/internal/data"
	"github.com/gdql/songsim/internal/data/bst"
	"github.com/gdql/songsim/internal/detector"
	"github.com/gdql/songsim/internal/errors"
	"github.com/gdql/songsim/internal/formatter"
	"github.com/gdql/songsim/internal/generator"
	"github.com/gdql/songsim/internal/logging"
	"github.com/gdql/songsim/internal/metrics"
	"github.com/gdql/songsim/internal/resolver"
	"github.com/gdql/songsim/internal/vocab"
)

const menu = `
== Menu ==
1) Generate and store a random song
2) Create a song manually
3) List titles (in order)
4) Show a song by title
5) Similarity check
6) Delete a song by title
7) Statistics
8) Quit
Choose an option: `

// Options configures a Session. Only In and Out are required.
type Options struct {
	In  io.Reader
	Out io.Writer

	Store     data.Store
	Vocab     *vocab.Vocabulary
	Generator *generator.Generator
	Formatter formatter.Formatter
	Format    formatter.OutputFormat
	Metrics   *metrics.Metrics
	Logger    *slog.Logger

	// Threshold is used when the threshold prompt is left blank or unparsable.
	// nil selects detector.DefaultThreshold.
	Threshold *float64
	Now       func() time.Time
}

// Session is one interactive run. Not safe for concurrent use.
type Session struct {
	id        string
	in        *bufio.Reader
	inErr     error
	out       io.Writer
	store     data.Store
	vocab     *vocab.Vocabulary
	detector  detector.Detector
	gen       *generator.Generator
	formatter formatter.Formatter
	format    formatter.OutputFormat
	metrics   *metrics.Metrics
	logger    *slog.Logger
	threshold float64
	now       func() time.Time
}

// New builds a session, filling unset collaborators with an empty store, a fresh
// vocabulary, the sample lexicon generator and private metrics.
func New(opts Options) *Session {
	s := &Session{
		id:        logging.NewSessionID(),
		in:        bufio.NewReader(opts.In),
		out:       opts.Out,
		store:     opts.Store,
		vocab:     opts.Vocab,
		gen:       opts.Generator,
		formatter: opts.Formatter,
		format:    opts.Format,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		threshold: detector.DefaultThreshold,
		now:       opts.Now,
	}
	if s.store == nil {
		s.store = bst.New()
	}
	if s.vocab == nil {
		s.vocab = vocab.New()
	}
	if s.gen == nil {
		seed := uint64(time.Now().UnixNano())
		// The static lexicon never fails to load.
		s.gen, _ = generator.New(context.Background(), generator.SampleLexicon(), rand.New(rand.NewPCG(seed, seed>>1)))
	}
	if s.formatter == nil {
		s.formatter = formatter.New()
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if opts.Threshold != nil {
		s.threshold = *opts.Threshold
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.detector = detector.New(s.store, s.vocab, detector.WithLogger(s.logger.With("session_id", s.id)), detector.WithMetrics(s.metrics))
	s.logger = logging.WithComponent(s.logger, "session")
	return s
}

// ID returns the session identifier attached to every log record.
func (s *Session) ID() string {
	return s.id
}

// Run shows the menu until the user quits or input ends. It returns ctx.Err() when
// the context is cancelled between actions, and the read error when input fails
// for any reason other than end of input.
func (s *Session) Run(ctx context.Context) error {
	ctx = logging.WithSessionID(ctx, s.id)
	log := logging.FromContext(ctx, s.logger)
	log.Debug("session started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		opt, ok := s.ask(menu)
		if !ok {
			break
		}
		opt = strings.TrimSpace(opt)
		log.Debug("menu option", "option", opt)
		if opt == "8" {
			break
		}
		if err := s.dispatch(log, opt); err != nil {
			return err
		}
	}

	fmt.Fprintln(s.out, "Goodbye.")
	log.Debug("session ended", "songs", s.store.Len(), "vocabulary", s.vocab.Len())
	if s.inErr != nil {
		return fmt.Errorf("read input: %w", s.inErr)
	}
	return nil
}

func (s *Session) dispatch(log *slog.Logger, opt string) error {
	switch opt {
	case "1":
		s.generate(log)
	case "2":
		s.create(log)
	case "3":
		return s.render(&formatter.Result{Type: formatter.ResultTitles, Titles: titles(s.store)})
	case "4":
		return s.show()
	case "5":
		return s.check(log)
	case "6":
		s.remove(log)
	case "7":
		return s.stats()
	default:
		s.fail(errors.New(errors.ErrInvalidOption, "%q", opt))
	}
	return nil
}

// ask prints prompt and reads one line of any length. ok is false at end of
// input or when reading fails; the failure is kept for Run.
func (s *Session) ask(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.inErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

func (s *Session) inputEnded(what string) {
	s.fail(errors.New(errors.ErrInput, "input ended before the %s; nothing stored", what))
}

func (s *Session) fail(err error) {
	fmt.Fprintln(s.out, err.Error())
}

func (s *Session) render(r *formatter.Result) error {
	out, err := s.formatter.Format(r, s.format)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, out)
	return nil
}

func (s *Session) insert(log *slog.Logger, song data.Song) {
	outcome := "added"
	if !s.store.Insert(song) {
		outcome = "replaced"
	}
	s.metrics.SongsStored.WithLabelValues(outcome).Inc()
	s.metrics.StoreSize.Set(float64(s.store.Len()))
	log.Debug("song stored", "title", song.Title(), "outcome", outcome, "words", song.UniqueWords())
	if outcome == "added" {
		fmt.Fprintf(s.out, "Song saved: %s\n", song.Title())
	} else {
		fmt.Fprintf(s.out, "Song replaced: %s\n", song.Title())
	}
}

func (s *Session) generate(log *slog.Logger) {
	text := s.gen.SongText()
	title, ok := s.ask("Title: ")
	if !ok {
		s.inputEnded("title")
		return
	}
	title = resolver.NormalizeTitle(title)
	if title == "" {
		title = resolver.FallbackTitle(resolver.GeneratedPrefix, s.now())
	}
	s.insert(log, data.NewSong(title, text))
}

func (s *Session) create(log *slog.Logger) {
	title, ok := s.ask("Title: ")
	if !ok {
		s.inputEnded("title")
		return
	}
	// The text line is always consumed so it is never read as a menu option.
	text, ok := s.ask("Song text (one line):\n")
	if !ok {
		s.inputEnded("song text")
		return
	}
	title = resolver.NormalizeTitle(title)
	if title == "" {
		s.fail(errors.New(errors.ErrInvalidTitle, "title must not be empty"))
		return
	}
	s.insert(log, data.NewSong(title, text))
}

func (s *Session) show() error {
	title, _ := s.ask("Title to show: ")
	song, err := resolver.Resolve(s.store, title)
	if err != nil {
		s.fail(err)
		return nil
	}
	return s.render(&formatter.Result{Type: formatter.ResultSong, Song: song})
}

func (s *Session) check(log *slog.Logger) error {
	mode, _ := s.ask("Check an existing title or a new text? (e/n): ")
	mode = strings.TrimSpace(mode)

	var probe data.Song
	if mode != "" && (mode[0] == 'e' || mode[0] == 'E') {
		title, _ := s.ask("Title: ")
		song, err := resolver.Resolve(s.store, title)
		if err != nil {
			s.fail(err)
			return nil
		}
		probe = *song
	} else {
		text, ok := s.ask("Enter the song text:\n")
		if !ok {
			s.fail(errors.New(errors.ErrInput, "input ended before the song text"))
			return nil
		}
		title, _ := s.ask("Title: ")
		title = resolver.NormalizeTitle(title)
		if title == "" {
			title = resolver.FallbackTitle(resolver.ProbePrefix, s.now())
		}
		probe = data.NewSong(title, text)
	}

	raw, _ := s.ask(fmt.Sprintf("Threshold [%s default]: ", strconv.FormatFloat(s.threshold, 'g', -1, 64)))
	threshold := ParseThreshold(raw, s.threshold)

	res := s.detector.Detect(&probe, threshold)
	log.Debug("probe checked", "probe", probe.Title(), "matches", len(res.Matches))
	return s.render(&formatter.Result{Type: formatter.ResultMatches, Detection: res})
}

func (s *Session) remove(log *slog.Logger) {
	title, _ := s.ask("Title: ")
	title = resolver.NormalizeTitle(title)
	if !s.store.Remove(title) {
		_, err := resolver.Resolve(s.store, title)
		s.fail(err)
		return
	}
	s.metrics.SongsRemoved.Inc()
	s.metrics.StoreSize.Set(float64(s.store.Len()))
	log.Debug("song removed", "title", title)
	fmt.Fprintln(s.out, "Deleted.")
}

func (s *Session) stats() error {
	st := []formatter.Stat{
		{Name: "Songs", Value: strconv.Itoa(s.store.Len())},
	}
	if h, ok := s.store.(interface{ Height() int }); ok {
		st = append(st, formatter.Stat{Name: "Tree height", Value: strconv.Itoa(h.Height())})
	}
	st = append(st, formatter.Stat{Name: "Vocabulary", Value: strconv.Itoa(s.vocab.Len())})

	samples, err := s.metrics.Snapshot()
	if err != nil {
		return err
	}
	for _, m := range samples {
		name := m.Name
		if m.Labels != "" {
			name += "{" + m.Labels + "}"
		}
		st = append(st, formatter.Stat{Name: name, Value: strconv.FormatFloat(m.Value, 'g', -1, 64)})
	}
	return s.render(&formatter.Result{Type: formatter.ResultStats, Stats: st})
}

// ParseThreshold parses the leading decimal number of a threshold entry, so
// "0.7x" gives 0.7. Input with no leading number gives def.
func ParseThreshold(raw string, def float64) float64 {
	num := numericPrefix(strings.TrimSpace(raw))
	if num == "" {
		return def
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return def
	}
	return v
}

// numericPrefix returns the longest prefix of s of the form
// [+-]digits[.digits][(e|E)[+-]digits], or "" if s does not start with a number.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := func(from int) int {
		for from < len(s) && s[from] >= '0' && s[from] <= '9' {
			from++
		}
		return from
	}
	start := i
	i = digits(i)
	mantissa := i > start
	if i < len(s) && s[i] == '.' {
		if j := digits(i + 1); j > i+1 || mantissa {
			mantissa = mantissa || j > i+1
			i = j
		}
	}
	if !mantissa {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := digits(j); k > j {
			i = k
		}
	}
	return s[:i]
}

func titles(store data.Store) []string {
	if t, ok := store.(interface{ Titles() []string }); ok {
		return t.Titles()
	}
	var out []string
	for _, s := range store.All() {
		out = append(out, s.Title())
	}
	return out
}
