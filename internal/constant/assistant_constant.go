package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

const (
	AssistantModeBoxes   = "boxes"
	AssistantModeOutfits = "outfits"
)

// StylePointsInitial is the balance a fresh session starts with;
// StylePointsPerChat is awarded for every user message.
const (
	StylePointsInitial = 100
	StylePointsPerChat = 10
)

const (
	BoxesGreeting = "Hi! 👋 I'm your personal AI stylist. I can help you discover clothing boxes that perfectly match your style. What are you looking for today?"

	OutfitsGreeting = "Hello! 👔 I'm here to help you build outfits from the clothes in your wardrobe. Describe the occasion or the style you're after and I'll suggest combinations!"

	OnboardingStyleQuestion    = "First, which styles speak to you? Pick as many as you like."
	OnboardingColorQuestion    = "Great choices! Which color palettes do you usually wear?"
	OnboardingOccasionQuestion = "Almost there — what occasions are you dressing for?"

	OnboardingCompleteResponse = "Your style profile is ready! ✨ Based on your picks, here are boxes I think you'll love."

	OnboardingEmptySelectionNotice = "Select at least one option to continue."
)

// Canned replies for the box-discovery script.
const (
	InterviewBoxResponse = "For an interview I recommend the 'Classic Pro' box 👔 It's full of elegant, professional pieces that make a great first impression! You can also try the garments on virtually."

	EveningBoxResponse = "For a night out, here are boxes made to shine! ✨ Feel free to try them on virtually."

	VintageBoxResponse = "Vintage lover? These boxes are packed with authentic retro finds that tell a story. 🕰️"

	DefaultBoxResponse = "Here's a selection of boxes you might like! 😊 You can preview how they'd look on you with the virtual try-on."
)

// Canned replies for the outfit-creation script.
const (
	InterviewOutfitResponse = "Here's my suggestion for a professional look! 💼"
	EveningOutfitResponse   = "Here's a look that will turn heads tonight! ✨"
	DefaultOutfitResponse   = "Here's a versatile outfit suggestion! 😊"
)

// PhotoSentMessage stands in for the binary upload in the conversation log.
const PhotoSentMessage = "📷 Photo"

// Inline replies for each style analysis failure class.
const (
	AnalysisNotConfiguredReply = "Style analysis isn't available right now: no API key is configured. Ask your administrator to enable it, or switch on demo mode."

	AnalysisRateLimitedReply = "I'm getting a lot of requests right now! 😅 Please try again in a few moments."

	AnalysisUnreadableReply = "Hmm, I couldn't read your style from that photo. Could you try another one with better lighting?"

	AnalysisFailedReply = "Something went wrong while analyzing your photo. Please try again!"
)

// DemoStyleAnalysis is the canned description returned in demo mode.
const DemoStyleAnalysis = "A relaxed, modern style with a touch of elegance. You like comfortable yet stylish pieces that reflect your unique personality."

// StyleAnalysisPrompt instructs the remote model to return strictly
// structured output so the response can be parsed mechanically.
const StyleAnalysisPrompt = `Analyze the photo of this person and determine their clothing style.
Respond ONLY with JSON in this exact format:
{
  "styleAnalysis": "Detailed description of the person's style",
  "recommendedCategories": ["Casual", "Classic", "Vintage", "Evening", "Sporty", "Boho"]
}

Available categories: Casual (everyday), Classic (professional/elegant), Vintage (retro), Urban (streetwear), Boho (bohemian), Minimal (capsule), Sporty (activewear), Evening (night out).
Choose the 2-3 categories that best match the visible or suggested style.`

// TryOnPrompt asks the remote model to composite the garments onto the photo.
const TryOnPrompt = "Virtually apply the following garments onto the person in the image and generate a realistic try-on preview."
