package recommend

import "postcraft/internal/platform"

// topics maps a caption keyword to related hashtags, most relevant first.
// Multi-word keys match as phrases.
var topics = map[string][]string{
	"ai":               {"ai", "artificialintelligence", "machinelearning", "tech", "innovation"},
	"artificial":       {"artificialintelligence", "ai"},
	"machine learning": {"machinelearning", "datascience", "ai"},
	"llm":              {"llm", "generativeai", "ai"},
	"productivity":     {"productivity", "productivityhacks", "worksmarter", "focus"},
	"tool":             {"tools", "saas", "tech"},
	"tools":            {"tools", "saas", "tech"},
	"startup":          {"startup", "entrepreneur", "founder", "smallbusiness"},
	"founder":          {"founder", "startup", "entrepreneur"},
	"business":         {"business", "entrepreneur", "smallbusiness"},
	"marketing":        {"marketing", "digitalmarketing", "contentmarketing", "branding"},
	"social media":     {"socialmedia", "socialmediamarketing", "contentcreator"},
	"content":          {"contentcreator", "contentmarketing", "creator"},
	"code":             {"coding", "programming", "developer"},
	"coding":           {"coding", "programming", "developer"},
	"developer":        {"developer", "programming", "devcommunity"},
	"golang":           {"golang", "go", "programming"},
	"design":           {"design", "uxdesign", "uidesign", "creative"},
	"fitness":          {"fitness", "workout", "gym", "health"},
	"workout":          {"workout", "fitness", "training"},
	"health":           {"health", "wellness", "selfcare"},
	"food":             {"food", "foodie", "recipe", "homecooking"},
	"recipe":           {"recipe", "homecooking", "foodie"},
	"coffee":           {"coffee", "coffeelover", "barista"},
	"travel":           {"travel", "wanderlust", "travelgram", "adventure"},
	"photo":            {"photography", "photooftheday"},
	"photography":      {"photography", "photooftheday", "camera"},
	"fashion":          {"fashion", "style", "ootd"},
	"career":           {"career", "careeradvice", "jobsearch", "leadership"},
	"leadership":       {"leadership", "management", "career"},
	"hiring":           {"hiring", "jobs", "careers"},
	"launch":           {"launch", "productlaunch", "newproduct"},
	"music":            {"music", "newmusic", "musician"},
	"education":        {"education", "learning", "edtech"},
	"learn":            {"learning", "education", "growthmindset"},
	"finance":          {"finance", "investing", "personalfinance"},
	"crypto":           {"crypto", "blockchain", "web3"},
}

// staples are broad per-platform tags used to fill remaining slots.
var staples = map[platform.Platform][]string{
	platform.Instagram: {"instagood", "photooftheday", "instadaily"},
	platform.Twitter:   {"trending"},
	platform.LinkedIn:  {"careers", "networking", "professionaldevelopment"},
	platform.TikTok:    {"fyp", "foryou", "viral"},
	platform.Facebook:  {"community"},
}
