package lexicon

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/frnorm"
	"github.com/npillmayer/frnorm/internal/lexfile"
	"github.com/npillmayer/frnorm/internal/testdata"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type LexiconTestEnviron struct {
	suite.Suite
	normalizer *Normalizer
}

// listen for 'go test' command --> run test methods
func TestLexiconFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frnorm.lexicon")
	defer teardown()
	suite.Run(t, new(LexiconTestEnviron))
}

// run before each test method, as normalizers cache forms
func (env *LexiconTestEnviron) SetupTest() {
	tracing.Select("frnorm.lexicon").SetTraceLevel(tracing.LevelError)
	env.normalizer = loadWords(env.T())
	tracing.Select("frnorm.lexicon").SetTraceLevel(tracing.LevelDebug)
}

func loadWords(t *testing.T) *Normalizer {
	r, err := testdata.Reader("words.txt")
	if err != nil {
		t.Fatalf("cannot open word list: %v", err)
	}
	n := New()
	if err := n.LoadWords(r); err != nil {
		t.Fatalf("cannot load word list: %v", err)
	}
	return n
}

// --- Tests -----------------------------------------------------------------

func (env *LexiconTestEnviron) TestLoadWords() {
	forms, folded := env.normalizer.Size()
	env.Equal(22, forms, "every word and form of the list should be registered")
	env.True(folded > 2, "folded table should contain more than the seeded forms")
	nrm, ok := env.normalizer.Lookup("ptit")
	env.True(ok)
	env.Equal("petit", nrm)
}

func (env *LexiconTestEnviron) TestFoldedTable() {
	n := env.normalizer
	nrm, ok := lookup(n.folded, "meme")
	env.True(ok)
	env.Equal("même", nrm, "seeded folded form must not be overwritten")
	nrm, _ = lookup(n.folded, "cote")
	env.Equal("cote", nrm, "a word equal to its folded form takes precedence")
	nrm, _ = lookup(n.folded, "sale")
	env.Equal("salle", nrm)
}

func (env *LexiconTestEnviron) TestFixtureForms() {
	r, err := testdata.Reader("forms.txt")
	env.Require().NoError(err)
	cnt := 0
	err = lexfile.Parse(r, func(token *lexfile.Token) {
		form, expected := token.Field(1), token.Field(2)
		nrm, err := env.normalizer.Normalize(form)
		env.NoError(err)
		env.Equal(expected, nrm, "line %d: normalization of %q", token.LineNo, form)
		cnt++
	})
	env.NoError(err)
	env.Equal(18, cnt)
}

func (env *LexiconTestEnviron) TestCaching() {
	n := env.normalizer
	nrm, err := n.Normalize("Bizaaaarre")
	env.NoError(err)
	env.Equal("bizarre", nrm, "unknown normalized form is its own norm")
	for _, form := range []string{"Bizaaaarre", "bizaaaarre", "bizare"} {
		cached, ok := n.Lookup(form)
		env.True(ok, "form %q should have been cached", form)
		env.Equal("bizarre", cached)
	}
}

func (env *LexiconTestEnviron) TestSubjectVerbInversion() {
	nrm, err := env.normalizer.Normalize("-nous")
	env.NoError(err)
	env.Equal("-nous", nrm)
}

func (env *LexiconTestEnviron) TestCompound() {
	env.Equal("petit-tôt", env.normalizer.NormalizeCompound("ptit-tot"))
	env.Equal("x-y", env.normalizer.NormalizeCompound("x-y"))
}

func (env *LexiconTestEnviron) TestAdd() {
	env.normalizer.Add("suis", "chuis", "chui")
	nrm, err := env.normalizer.Normalize("CHUIS")
	env.NoError(err)
	env.Equal("suis", nrm)
}

func (env *LexiconTestEnviron) TestInvalidInput() {
	_, err := env.normalizer.Normalize("\xff")
	env.True(errors.Is(err, frnorm.ErrInvalidArgument))
}

func (env *LexiconTestEnviron) TestSaveAndLoad() {
	_, _ = env.normalizer.Normalize("Ouiiii")
	var buf bytes.Buffer
	env.Require().NoError(env.normalizer.Save(&buf))
	env.True(strings.HasPrefix(buf.String(), FormatHeader+"\n"))
	//
	loaded := New()
	env.Require().NoError(loaded.Load(&buf))
	f1, d1 := env.normalizer.Size()
	f2, d2 := loaded.Size()
	env.Equal(f1, f2)
	env.Equal(d1, d2)
	nrm, ok := loaded.Lookup("Ouiiii")
	env.True(ok)
	env.Equal("oui", nrm)
	nrm, err := loaded.Normalize("hopital")
	env.NoError(err)
	env.Equal("hôpital", nrm)
}

// --- Plain tests -----------------------------------------------------------

func TestLoadRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frnorm.lexicon")
	defer teardown()
	//
	n := New()
	err := n.Load(strings.NewReader("hello\nworld\n"))
	assert.True(t, errors.Is(err, ErrFormat))
	err = n.Load(strings.NewReader(FormatHeader + "\nnot zstd at all"))
	assert.Error(t, err)
	forms, folded := n.Size()
	assert.Equal(t, 0, forms, "failed load must leave the normalizer unchanged")
	assert.Equal(t, 2, folded)
}

func TestLoadWordsTooManyFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frnorm.lexicon")
	defer teardown()
	//
	n := New()
	err := n.LoadWords(strings.NewReader("a;b;c\n"))
	assert.Error(t, err)
}

func TestConcurrentNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "frnorm.lexicon")
	defer teardown()
	//
	n := loadWords(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, form := range []string{"ETRE", "auteur-rice-s", "ouiiii", "tot-ou-tard"} {
				if _, err := n.Normalize(form); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()
	nrm, _ := n.Lookup("ETRE")
	assert.Equal(t, "être", nrm)
}
