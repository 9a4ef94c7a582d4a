package catechism

import (
	"fmt"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/discord"
)

const (
	// quoteEmbedColor is Vatican gold.
	quoteEmbedColor = 0xFFD700

	// quoteMaxDescription leaves headroom under Discord's 4096-character
	// embed description limit for the truncation notice.
	quoteMaxDescription = 4000

	truncationNotice = "...\n(Quote too long, truncated.)"

	quoteFooterText = "Catechism Bot • Made by Louiepolk"
)

// NewQuoteEmbed builds the rich embed used for a found paragraph. The
// description is capped at quoteMaxDescription characters; the cut falls
// on a rune boundary so multi-byte text stays valid UTF-8.
func NewQuoteEmbed(number int, text string) discord.Embed {
	if utf8.RuneCountInString(text) > quoteMaxDescription {
		runes := []rune(text)
		text = string(runes[:quoteMaxDescription]) + truncationNotice
	}

	return discord.Embed{
		Title:       fmt.Sprintf("📖 CCC %d", number),
		Description: text,
		Color:       quoteEmbedColor,
		Footer: &discord.EmbedFooter{
			Text: quoteFooterText,
		},
	}
}

// NotFoundMessage is the user-visible reply for a paragraph reference
// outside the dataset. It takes the reference as typed by the user, which
// may be too large to even parse as an int.
func NotFoundMessage(ref string) string {
	return fmt.Sprintf("Could not find Catechism quote with ID: `%s`. Please check the number.", ref)
}
