package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
)

const referenceSource = `class Shop {
    int count = 0;
    Color color;

    void add(int n) {
        count += n;
        this.count++;
        other.count = 1;
        log(count);
        Runnable r = this::reset;
        reset();
        Shop.helper();
    }

    void reset() {
        count = 0;
        color = Color.RED;
    }

    static void helper() {
        int local = 1;
    }

    enum Color { RED }
}
`

func findMember(t *testing.T, snap m.ClassSnapshot, kind m.MemberKind, name string) m.MemberDescriptor {
	t.Helper()

	for _, member := range snap.Members {
		if member.Kind == kind && member.Name == name {
			return member
		}
	}

	require.Failf(t, "member not found", "%s %s", kind, name)

	return m.MemberDescriptor{}
}

// occurrences returns the ranges of the nth (1-based) occurrences of word.
func occurrences(src, word string, nth ...int) []m.Range {
	var all []m.Range

	for from := 0; ; {
		i := strings.Index(src[from:], word)
		if i < 0 {
			break
		}

		all = append(all, m.Range{Start: from + i, End: from + i + len(word)})
		from += i + len(word)
	}

	out := make([]m.Range, 0, len(nth))
	for _, n := range nth {
		out = append(out, all[n-1])
	}

	return out
}

func TestJavaReferenceIndex_FindReferences(t *testing.T) {
	doc, err := NewJavaDocumentFromText(referenceSource, NewTreeSitterJavaParser(), WithSynchronousParse())
	require.NoError(t, err)

	snap, err := doc.Snapshot()
	require.NoError(t, err)

	index := NewJavaReferenceIndex(doc)

	t.Run("variable", func(t *testing.T) {
		refs, err := index.FindReferences(findMember(t, snap, m.KindVariable, "count"))
		require.NoError(t, err)

		// Declaration (1st) and other.count (4th) are excluded.
		assert.Equal(t, occurrences(referenceSource, "count", 2, 3, 5, 6), refs)
	})

	t.Run("method", func(t *testing.T) {
		refs, err := index.FindReferences(findMember(t, snap, m.KindMethod, "reset"))
		require.NoError(t, err)

		assert.Equal(t, occurrences(referenceSource, "reset", 1, 2), refs)

		refs, err = index.FindReferences(findMember(t, snap, m.KindMethod, "helper"))
		require.NoError(t, err)
		assert.Equal(t, occurrences(referenceSource, "helper", 1), refs)
	})

	t.Run("enum", func(t *testing.T) {
		refs, err := index.FindReferences(findMember(t, snap, m.KindEnum, "Color"))
		require.NoError(t, err)

		assert.Equal(t, occurrences(referenceSource, "Color", 1, 2), refs)
	})

	t.Run("unreferenced", func(t *testing.T) {
		refs, err := index.FindReferences(findMember(t, snap, m.KindVariable, "color"))
		require.NoError(t, err)
		assert.Equal(t, occurrences(referenceSource, "color", 2), refs)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := index.FindReferences(m.MemberDescriptor{Kind: m.KindVariable})
		assert.True(t, jerrors.IsCode(err, jerrors.CodeInvariantViolation))
	})
}
