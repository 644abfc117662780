package recipes

import (
	"fmt"
	"strings"
)

const searchQueryPrefix = `SELECT DISTINCT id, COALESCE(naziv_dat, ''), slika FROM recepti WHERE `

// keywordCondition matches one keyword against both word columns. Only the
// placeholder number is formatted into it.
const keywordCondition = `(besede LIKE $%d ESCAPE '\' OR leme LIKE $%d ESCAPE '\')`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildSearchQuery returns the search statement and its bind arguments, one
// "%keyword%" pattern per keyword.
func buildSearchQuery(keywords []string) (string, []any) {
	conds := make([]string, 0, len(keywords))
	args := make([]any, 0, len(keywords))
	for i, kw := range keywords {
		conds = append(conds, fmt.Sprintf(keywordCondition, i+1, i+1))
		args = append(args, "%"+escapeLike(kw)+"%")
	}
	return searchQueryPrefix + strings.Join(conds, " AND ") + " ORDER BY id", args
}
