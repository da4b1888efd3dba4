// Package support provides the static customer-support knowledge base:
// FAQ entries, store information, size guides, and synthetic issue tickets.
// Nothing here is persisted; the tables are loaded once per process.
package support

import (
	"strings"

	"github.com/google/uuid"
)

// HelpResult is the answer to a help request. A matched topic fills Topic
// and Information; an unmatched or empty topic fills the full index instead.
type HelpResult struct {
	Topic           string            `json:"topic,omitempty"`
	Information     string            `json:"information,omitempty"`
	AdditionalHelp  string            `json:"additional_help,omitempty"`
	AvailableTopics []string          `json:"available_topics,omitempty"`
	FAQ             map[string]string `json:"faq,omitempty"`
	Message         string            `json:"message,omitempty"`
}

// StoreInfo is the fixed store contact record.
type StoreInfo struct {
	Name    string `json:"name"`
	Hours   string `json:"hours"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Website string `json:"website"`
}

// IssueTicket acknowledges a reported issue. Tickets are not stored
// anywhere; this is a synthetic confirmation only.
type IssueTicket struct {
	Success   bool   `json:"success"`
	TicketID  string `json:"ticket_id"`
	IssueType string `json:"issue_type"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	NextSteps string `json:"next_steps"`
}

// SizeGuide describes sizing for one product category.
type SizeGuide struct {
	Sizes        []string          `json:"sizes,omitempty"`
	Guide        string            `json:"guide,omitempty"`
	Measurements map[string]string `json:"measurements,omitempty"`
	Tips         string            `json:"tips,omitempty"`
}

// SizeGuideResult is the answer to a size-guide request, with the same
// absent-key policy as HelpResult.
type SizeGuideResult struct {
	Category            string     `json:"category,omitempty"`
	Guide               *SizeGuide `json:"size_info,omitempty"`
	AvailableCategories []string   `json:"available_categories,omitempty"`
	Message             string     `json:"message,omitempty"`
}

// KnowledgeBase answers support questions from fixed lookup tables.
type KnowledgeBase struct {
	faq             map[string]string
	topics          []string
	info            StoreInfo
	guides          map[string]SizeGuide
	guideCategories []string
}

// NewKnowledgeBase builds the knowledge base with the store's fixed content.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		faq: map[string]string{
			"return_policy": "You can return items within 30 days of purchase with original receipt. Items must be in original condition.",
			"shipping":      "We offer free shipping on orders over $50. Standard shipping takes 3-5 business days.",
			"warranty":      "All sports equipment comes with a 1-year manufacturer warranty. Apparel has a 90-day warranty.",
			"size_guide":    "Please check our size guide on the product page. We offer exchanges for wrong sizes within 14 days.",
			"payment":       "We accept major credit cards, PayPal, and store credit. Payment is processed securely.",
			"contact":       "You can reach us at support@wrteam.com or call 1-800-WRTEAM during business hours 9AM-6PM EST.",
		},
		topics: []string{"return_policy", "shipping", "warranty", "size_guide", "payment", "contact"},
		info: StoreInfo{
			Name:    "WRTeam Sport Center",
			Hours:   "Monday-Saturday: 9AM-9PM, Sunday: 10AM-6PM",
			Phone:   "1-800-WRTEAM",
			Email:   "support@wrteam.com",
			Address: "123 Sports Avenue, Athletic City, AC 12345",
			Website: "www.wrteam.com",
		},
		guides: map[string]SizeGuide{
			"footwear": {
				Sizes: []string{"6", "7", "8", "9", "10", "11", "12", "13"},
				Guide: "Measure your foot length in inches. Add 0.5 inches for comfort.",
				Tips:  "Try shoes in the evening when feet are slightly swollen for best fit.",
			},
			"apparel": {
				Sizes: []string{"XS", "S", "M", "L", "XL", "XXL"},
				Measurements: map[string]string{
					"XS":  "Chest: 32-34 inches",
					"S":   "Chest: 35-37 inches",
					"M":   "Chest: 38-40 inches",
					"L":   "Chest: 41-43 inches",
					"XL":  "Chest: 44-46 inches",
					"XXL": "Chest: 47-49 inches",
				},
				Tips: "Measure around the fullest part of your chest for accurate sizing.",
			},
			"equipment": {
				Guide: "Equipment sizes vary by sport. Check individual product pages for specific sizing information.",
				Tips:  "Consider your skill level and playing style when choosing equipment sizes.",
			},
		},
		guideCategories: []string{"footwear", "apparel", "equipment"},
	}
}

// Help returns the FAQ entry for topic, or the full topic index when the
// topic is empty or unknown. Topic matching is case-insensitive.
func (kb *KnowledgeBase) Help(topic string) HelpResult {
	key := strings.ToLower(topic)
	if info, ok := kb.faq[key]; ok {
		return HelpResult{
			Topic:          topic,
			Information:    info,
			AdditionalHelp: "For more specific questions, contact our support team.",
		}
	}
	return HelpResult{
		AvailableTopics: kb.topics,
		FAQ:             kb.faq,
		Message:         "Here are the help topics available. Ask about any specific topic for detailed information.",
	}
}

// StoreInfo returns the fixed store contact record.
func (kb *KnowledgeBase) StoreInfo() StoreInfo {
	return kb.info
}

// ReportIssue acknowledges an issue report with a fresh ticket ID. It
// always succeeds; there is no real ticketing backend behind it.
func (kb *KnowledgeBase) ReportIssue(issueType, description string) IssueTicket {
	ticketID := "TICKET" + strings.ToUpper(uuid.NewString()[:8])
	return IssueTicket{
		Success:   true,
		TicketID:  ticketID,
		IssueType: issueType,
		Status:    "submitted",
		Message:   "Your issue has been submitted. Ticket ID: " + ticketID + ". Our support team will contact you within 24 hours.",
		NextSteps: "Check your email for updates or contact us at support@wrteam.com with your ticket ID.",
	}
}

// SizeGuide returns the guide for category, or the category index when the
// category is empty or unknown. Matching is case-insensitive.
func (kb *KnowledgeBase) SizeGuide(category string) SizeGuideResult {
	key := strings.ToLower(category)
	if guide, ok := kb.guides[key]; ok {
		return SizeGuideResult{Category: category, Guide: &guide}
	}
	return SizeGuideResult{
		AvailableCategories: kb.guideCategories,
		Message:             "Size guides available for footwear, apparel, and equipment.",
	}
}
