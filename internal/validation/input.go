package validation

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MaxReportTitleLength       = 200
	MaxReportLocationLength    = 200
	MaxReportDescriptionLength = 5000
	MaxImageURLLength          = 2048
	MaxSuggestionLength        = 2000
	MaxSearchLength            = 100

	// Запас под "data:image/webp;base64,"
	maxDataURLHeaderLength = 64
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateRequiredText проверяет обязательное текстовое поле обращения.
func ValidateRequiredText(fieldName, value string, max int) error {
	if err := ValidateNonEmpty(fieldName, value); err != nil {
		return err
	}
	return ValidateLength(fieldName, strings.TrimSpace(value), 0, max)
}

// ValidateReportTitle проверяет заголовок обращения.
func ValidateReportTitle(title string) error {
	return ValidateRequiredText("заголовок", title, MaxReportTitleLength)
}

// ValidateReportLocation проверяет место проблемы.
func ValidateReportLocation(location string) error {
	return ValidateRequiredText("местоположение", location, MaxReportLocationLength)
}

// ValidateReportDescription проверяет описание обращения.
func ValidateReportDescription(description string) error {
	return ValidateRequiredText("описание", description, MaxReportDescriptionLength)
}

// ValidateSuggestion проверяет текст предложения.
func ValidateSuggestion(text string) error {
	return ValidateRequiredText("предложение", text, MaxSuggestionLength)
}

// MaxDataImageURLLength возвращает предельную длину data:image URL, чьё
// содержимое после декодирования укладывается в maxImageBytes.
func MaxDataImageURLLength(maxImageBytes int64) int {
	return base64.StdEncoding.EncodedLen(int(maxImageBytes)) + maxDataURLHeaderLength
}

// ValidateImageURL проверяет ссылку на изображение.
// Допускаются http(s) ссылки, пути этого сервера и data:image URL
// не длиннее maxDataURLLength (0 означает MaxImageURLLength).
// Пустая или состоящая из пробелов ссылка считается отсутствующей.
func ValidateImageURL(link *string, maxDataURLLength int) error {
	if link == nil {
		return nil
	}

	linkStr := strings.TrimSpace(*link)
	if linkStr == "" {
		return nil
	}

	if strings.HasPrefix(linkStr, "data:image/") {
		if maxDataURLLength <= 0 {
			maxDataURLLength = MaxImageURLLength
		}
		if len(linkStr) > maxDataURLLength {
			return fmt.Errorf("встроенное изображение больше допустимых %d символов", maxDataURLLength)
		}
		return nil
	}

	if err := ValidateLength("ссылка на изображение", linkStr, 0, MaxImageURLLength); err != nil {
		return err
	}

	if strings.HasPrefix(linkStr, "/") && !strings.HasPrefix(linkStr, "//") {
		return nil
	}

	parsedURL, err := url.Parse(linkStr)
	if err != nil {
		return fmt.Errorf("некорректный формат URL")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("ссылка должна начинаться с http:// или https://")
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("ссылка должна содержать доменное имя")
	}
	return nil
}
