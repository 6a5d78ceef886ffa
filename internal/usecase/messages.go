package usecase

import "fmt"

// Canned bot replies. User-facing wording is part of the bot's behavior
// contract; change with care.
const (
	welcomeMessage = "👋 Welcome to TikTok Downloader Bot\n\n" +
		"✅ No watermark\n" +
		"✅ HD quality\n" +
		"✅ 100% Free\n\n" +
		"Just send me the TikTok link and I'll download it for you."

	helpMessage = "📖 How to use:\n\n" +
		"1. Copy a TikTok video URL\n" +
		"2. Send it to this bot\n" +
		"3. Wait for the video to be processed\n" +
		"4. Receive the downloaded video\n\n" +
		"Supported formats:\n" +
		"• TikTok video URLs\n" +
		"• TikTok image posts\n\n" +
		"Commands:\n" +
		"/start - Start the bot\n" +
		"/help - Show this help message"

	invalidLinkMessage = "❌ Invalid TikTok link.\n\nSend a valid TikTok video URL."

	processingMessage = "⏳ Downloading your video, please wait..."

	tryAgainMessage = "⚠️ Could not download video.\n\nPlease try again later."

	engagementMessage = "🎉 Video ready!\n\n" +
		"Want unlimited downloads?\n\n" +
		"✅ Invite 3 friends\n" +
		"✅ Leave a ⭐⭐⭐⭐⭐ review"
)

// shareReply builds the share deep link for the requesting chat.
func shareReply(botUsername string, chatID int64) string {
	return fmt.Sprintf(
		"🔁 Share this bot with your friends!\n\nhttps://t.me/%s?start=ref_%d\n\nThank you for sharing! 🙏",
		botUsername, chatID,
	)
}

func rateReply(botUsername string) string {
	return fmt.Sprintf(
		"⭐ Rate our bot!\n\nYour feedback helps us improve. Thank you! 🙏\n\nhttps://t.me/%s",
		botUsername,
	)
}

func joinChannelReply(channelUsername string) string {
	return fmt.Sprintf(
		"📢 Join our channel for updates and more content!\n\nhttps://t.me/%s",
		channelUsername,
	)
}
