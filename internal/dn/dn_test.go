package dn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strs(parts [][]byte) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string(p)
	}
	return out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		dn   string
		want []string
	}{
		{"single", "dc=com", []string{"dc=com"}},
		{"multiple", "uid=alice,ou=users,dc=example,dc=com", []string{"uid=alice", "ou=users", "dc=example", "dc=com"}},
		{"spaces around separators", "cn=foo , dc=example", []string{"cn=foo", "dc=example"}},
		{"escaped comma", `cn=Smith\, John,dc=example`, []string{`cn=Smith\, John`, "dc=example"}},
		{"escaped trailing space", `cn=foo\ ,dc=x`, []string{`cn=foo\ `, "dc=x"}},
		{"quoted comma", `cn="a,b",dc=x`, []string{`cn="a,b"`, "dc=x"}},
		{"multi-valued", "cn=a+sn=b,dc=x", []string{"cn=a+sn=b", "dc=x"}},
		{"case preserved", "CN=Foo,DC=Example", []string{"CN=Foo", "DC=Example"}},
		{"utf8 value", "cn=caf\xc3\xa9,dc=x", []string{"cn=caf\xc3\xa9", "dc=x"}},
		{"equals in value", "cn=a=b,dc=x", []string{"cn=a=b", "dc=x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split([]byte(tt.dn))
			require.NoError(t, err)
			assert.Equal(t, tt.want, strs(got))
		})
	}
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		name string
		dn   string
		want error
	}{
		{"empty", "", ErrEmptyDN},
		{"blank", "   ", ErrEmptyDN},
		{"empty component", "cn=a,,dc=x", ErrEmptyRDN},
		{"trailing comma", "cn=a,", ErrEmptyRDN},
		{"leading comma", ",cn=a", ErrEmptyRDN},
		{"no equals", "foo,dc=x", ErrInvalidRDN},
		{"empty type", "=foo,dc=x", ErrInvalidRDN},
		{"bad multi-valued", "cn=a+sn,dc=x", ErrInvalidRDN},
		{"dangling escape", `cn=a\`, ErrUnbalanced},
		{"open quote", `cn="a,dc=x`, ErrUnbalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split([]byte(tt.dn))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecompose(t *testing.T) {
	rdn, superior, err := Decompose([]byte("cn=new,ou=people,dc=example,dc=com"))
	require.NoError(t, err)
	assert.Equal(t, "cn=new", string(rdn))
	assert.Equal(t, "ou=people,dc=example,dc=com", string(superior))

	rdn, superior, err = Decompose([]byte("dc=com"))
	require.NoError(t, err)
	assert.Equal(t, "dc=com", string(rdn))
	assert.Empty(t, superior)

	_, _, err = Decompose(nil)
	assert.ErrorIs(t, err, ErrEmptyDN)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a=1,b=2", string(Join([][]byte{[]byte("a=1"), []byte("b=2")})))
	assert.Empty(t, Join(nil))
}
