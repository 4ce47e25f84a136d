package gopaginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_JoinType_keyword(t *testing.T) {
	tests := []struct {
		name     string
		in       JoinType
		valid    bool
		keyword  string
		panicExp bool
	}{
		{"zero value is inner", "", true, "INNER JOIN", false},
		{"inner", JoinInner, true, "INNER JOIN", false},
		{"left", JoinLeft, true, "LEFT JOIN", false},
		{"right", JoinRight, true, "RIGHT JOIN", false},
		{"full", JoinFull, true, "FULL JOIN", false},
		{"cross is not supported", JoinType("cross"), false, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.in.Valid())
			if tt.panicExp {
				assert.Panics(t, func() { _ = tt.in.keyword() })
				return
			}
			assert.Equal(t, tt.keyword, tt.in.keyword())
		})
	}
}

func Test_Join_ToSQL(t *testing.T) {
	tests := []struct {
		name string
		join Join
		want string
	}{
		{
			name: "inner by default",
			join: Join{Table: "orders", On: map[string]string{"users.id": "orders.user_id"}},
			want: "INNER JOIN orders ON users.id = orders.user_id",
		},
		{
			name: "left with alias",
			join: Join{Table: "orders", Alias: "o", Type: JoinLeft, On: map[string]string{"users.id": "o.user_id"}},
			want: "LEFT JOIN orders AS o ON users.id = o.user_id",
		},
		{
			name: "several pairs in key order",
			join: Join{
				Table: "memberships",
				Type:  JoinFull,
				On: map[string]string{
					"users.tenant_id": "memberships.tenant_id",
					"users.id":        "memberships.user_id",
				},
			},
			want: "FULL JOIN memberships ON users.id = memberships.user_id AND users.tenant_id = memberships.tenant_id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.join.ToSQL())
		})
	}
}

func Test_Join_validate(t *testing.T) {
	tests := []struct {
		name string
		join Join
		ok   bool
	}{
		{"valid", Join{Table: "orders", On: map[string]string{"users.id": "orders.user_id"}}, true},
		{"no conditions", Join{Table: "orders"}, false},
		{"unknown type", Join{Table: "orders", Type: "outer", On: map[string]string{"a": "b"}}, false},
		{"bad table", Join{Table: "orders;", On: map[string]string{"a": "b"}}, false},
		{"bad alias", Join{Table: "orders", Alias: "o o", On: map[string]string{"a": "b"}}, false},
		{"literal on the right", Join{Table: "orders", On: map[string]string{"a": "'x' OR 1=1"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.join.validate(); (err == nil) != tt.ok {
				t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
			}
		})
	}
}
