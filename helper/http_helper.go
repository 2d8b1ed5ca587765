package helper

import (
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper writes the API's error bodies ({"detail": "<message>"})
// and validates request DTOs against their validate tags.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(err)
	}

	return &HTTPHelper{Validate: validate, Translator: trans}
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode maps a service error to its HTTP status code.
func (u *HTTPHelper) GetStatusCode(err error) int {
	statusCode := http.StatusInternalServerError
	if err != nil {
		switch u.getTypeData(err) {
		case "models.ErrorUnauthorized":
			statusCode = http.StatusUnauthorized
		case "models.ErrorForbidden":
			statusCode = http.StatusForbidden
		case "models.ErrorNotFound":
			statusCode = http.StatusNotFound
		case "models.ErrorValidation":
			statusCode = http.StatusBadRequest
		}
	}

	return statusCode
}

// SendServiceError maps err to a status code and writes the detail body.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	c.JSON(u.GetStatusCode(err), gin.H{"detail": err.Error()})
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": message})
}

func (u *HTTPHelper) SendUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"detail": message})
}

func (u *HTTPHelper) SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"detail": message})
}

// SendValidationError writes a 400 with translated per-field messages.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	fields := map[string][]string{}
	translations := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		key := Underscore(err.StructField())
		fields[key] = append(fields[key], translations[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"detail": "Validation failed.",
		"fields": fields,
	})
}

// BindAndValidate binds the JSON body into req and runs tag validation.
// It writes the error response itself and reports whether the request
// may proceed.
func (u *HTTPHelper) BindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		u.SendBadRequest(c, "Malformed request body.")
		return false
	}
	if err := u.Validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			u.SendValidationError(c, verrs)
		} else {
			u.SendBadRequest(c, err.Error())
		}
		return false
	}
	return true
}

// BindQueryAndValidate is BindAndValidate for query parameters.
func (u *HTTPHelper) BindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		u.SendBadRequest(c, "Malformed query parameters.")
		return false
	}
	if err := u.Validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			u.SendValidationError(c, verrs)
		} else {
			u.SendBadRequest(c, err.Error())
		}
		return false
	}
	return true
}

// Underscore converts a StructField name like "TagIDs" to "tag_ids".
func Underscore(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
