package gcloud

// Request and response shapes for the v3 translateText method.

type apiRequest struct {
	Contents           []string `json:"contents"`
	SourceLanguageCode string   `json:"sourceLanguageCode"`
	TargetLanguageCode string   `json:"targetLanguageCode"`
	MimeType           string   `json:"mimeType"`
}

type apiResponse struct {
	Translations []apiTranslation `json:"translations"`
}

type apiTranslation struct {
	TranslatedText string `json:"translatedText"`
}
