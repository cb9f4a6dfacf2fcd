package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Number,Hebrew,Transliteration,Astrology,Angel,Keyword,Meaning,Application,Question,Practice,Reference,Scripture\n"

func row(number int, translit string) string {
	return fmt.Sprintf("%d,abc,%s,Leo 0-5,Vehuiah,Keyword,Meaning %d,Apply,Ask?,Breathe,Psalm 3:4,Text\n", number, translit, number)
}

func TestParse_LooksUpByPosition(t *testing.T) {
	var b strings.Builder
	b.WriteString(header)
	for i := 1; i <= 72; i++ {
		b.WriteString(row(i, fmt.Sprintf("Name%d", i)))
	}

	c, err := Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, 72, c.Len())

	rec, ok := c.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, 6, rec.Number)
	assert.Equal(t, "Name6", rec.Transliteration)
	assert.Equal(t, 5, rec.Position())
}

func TestParse_OutOfRangeLookup(t *testing.T) {
	c, err := Parse(strings.NewReader(header + row(1, "Vehu")))
	require.NoError(t, err)

	for _, pos := range []int{-1, 1, 72, 100} {
		_, ok := c.Lookup(pos)
		assert.False(t, ok, "position %d", pos)
	}
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	input := header +
		row(1, "Vehu") +
		"2,too,few,fields\n" +
		"x,abc,Bad,Leo,Angel,Key,Meaning,Apply,Ask,Breathe,Ref,Text\n" +
		"\n" +
		row(3, "Sit")

	c, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, ok := c.Lookup(1)
	assert.False(t, ok, "short row must be skipped")
	rec, ok := c.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "Sit", rec.Transliteration)
}

func TestParse_QuotedFields(t *testing.T) {
	input := header +
		`1,  abc , Vehu ,"Aries, 0-5","Vehuiah","Will","Say ""yes"", then act",Apply,Ask?,Breathe,"Psalm 3:4","But you, O Lord"` + "\n"

	c, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	rec, ok := c.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, "abc", rec.ScriptForm)
	assert.Equal(t, "Vehu", rec.Transliteration)
	assert.Equal(t, "Aries, 0-5", rec.AstrologicalCorrespondence)
	assert.Equal(t, `Say "yes", then act`, rec.Meaning)
	assert.Equal(t, "But you, O Lord", rec.ScriptureText)
}

func TestParse_ExtraColumnsIgnored(t *testing.T) {
	input := header + "1,abc,Vehu,Leo,Angel,Key,Meaning,Apply,Ask,Breathe,Ref,Text,extra,more\n"

	c, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	rec, ok := c.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, "Text", rec.ScriptureText)
}

func TestParse_FirstDuplicateWins(t *testing.T) {
	c, err := Parse(strings.NewReader(header + row(1, "First") + row(1, "Second")))
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	rec, _ := c.Lookup(0)
	assert.Equal(t, "First", rec.Transliteration)
}

func TestParse_HeaderOnly(t *testing.T) {
	c, err := Parse(strings.NewReader(header))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Records())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestParse_ReadError(t *testing.T) {
	c, err := Parse(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.Equal(t, 0, c.Len())
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		DefaultFileName: {Data: []byte(header + row(1, "Vehu") + row(2, "Yeli"))},
	}

	c := Load(context.Background(), fsys, DefaultFileName)
	assert.Equal(t, 2, c.Len())

	records := c.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Yeli", records[1].Transliteration)

	records[0].Transliteration = "changed"
	rec, _ := c.Lookup(0)
	assert.Equal(t, "Vehu", rec.Transliteration, "Records returns a copy")
}

func TestLoad_MissingFileYieldsEmptyCatalog(t *testing.T) {
	c := Load(context.Background(), fstest.MapFS{}, DefaultFileName)
	require.NotNil(t, c)
	assert.Equal(t, 0, c.Len())

	_, ok := c.Lookup(0)
	assert.False(t, ok)
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Records())
	_, ok := c.Lookup(0)
	assert.False(t, ok)
}

func TestParse_WhitespaceAroundQuotedField(t *testing.T) {
	input := header +
		`1,abc, "Vehu, iah" ,Leo,Angel,Key,Meaning,Apply,Ask,Breathe,Ref,Text` + "\r\n" +
		row(2, "Yeli")

	c, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	rec, ok := c.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, "Vehu, iah", rec.Transliteration)
	assert.Equal(t, "Text", rec.ScriptureText)

	rec, ok = c.Lookup(1)
	require.True(t, ok, "a well-formed row after the quoted one still loads")
	assert.Equal(t, "Yeli", rec.Transliteration)
}

func TestParse_UnterminatedQuoteStaysOnItsLine(t *testing.T) {
	input := header +
		`1,abc,"Vehu,Leo,Angel,Key,Meaning,Apply,Ask,Breathe,Ref,Text` + "\n" +
		row(2, "Yeli")

	c, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	_, ok := c.Lookup(0)
	assert.False(t, ok, "the broken row collapses to too few fields")
	rec, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "Yeli", rec.Transliteration)
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ,", []string{"a", "b", ""}},
		{`"x, y",z`, []string{"x, y", "z"}},
		{`"say ""hi""",z`, []string{`say "hi"`, "z"}},
		{` "q" ,z`, []string{"q", "z"}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitLine(tt.line), "line %q", tt.line)
	}
}
