package server

// openAPIDoc returns the OpenAPI 3.0 description of the API. Built
// statically; served at /api-docs.
func openAPIDoc() map[string]interface{} {
	profileSchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id":          map[string]interface{}{"type": "string"},
			"photo":       map[string]interface{}{"type": "string", "nullable": true},
			"city":        map[string]interface{}{"type": "string"},
			"age":         map[string]interface{}{"type": "integer"},
			"name":        map[string]interface{}{"type": "string"},
			"gender":      map[string]interface{}{"type": "string"},
			"description": map[string]interface{}{"type": "string"},
		},
		"required": []string{"name", "city", "age", "gender"},
	}

	likeSchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"userIdLiked": map[string]interface{}{"type": "string"},
			"liked":       map[string]interface{}{"type": "integer", "description": "1 to like, 0 to dislike"},
		},
		"required": []string{"userIdLiked", "liked"},
	}

	messageSchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"userId":      map[string]interface{}{"type": "string"},
			"recipientId": map[string]interface{}{"type": "string"},
			"message":     map[string]interface{}{"type": "string"},
		},
		"required": []string{"userId", "recipientId", "message"},
	}

	op := func(summary string, responses map[string]string) map[string]interface{} {
		resp := map[string]interface{}{}
		for code, desc := range responses {
			resp[code] = map[string]interface{}{"description": desc}
		}
		return map[string]interface{}{"summary": summary, "responses": resp}
	}

	return map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":       "petswipe API",
			"version":     "1.0.0",
			"description": "Pet matchmaking API: profiles, swipes, auto-reply messaging",
		},
		"paths": map[string]interface{}{
			"/users": map[string]interface{}{
				"post": op("Create a profile (multipart: photo?, city, age, name, gender, description)",
					map[string]string{"201": "Profile created", "500": "Server error"}),
			},
			"/users/{id}": map[string]interface{}{
				"get": op("Get a profile by id",
					map[string]string{"200": "Profile", "404": "Not found"}),
				"put": op("Update city, age, name and gender",
					map[string]string{"200": "Updated", "400": "Missing field", "404": "Not found"}),
			},
			"/users/{id}/photo": map[string]interface{}{
				"post": op("Upload or replace the profile photo",
					map[string]string{"200": "Photo stored", "400": "No file or bad upload"}),
				"get": op("Get the profile photo URL",
					map[string]string{"200": "Photo URL", "404": "No photo"}),
			},
			"/users/{userId}/like": map[string]interface{}{
				"post": op("Like or dislike another profile",
					map[string]string{"200": "Recorded", "400": "Missing field"}),
			},
			"/users/{userId}/likes": map[string]interface{}{
				"get": op("List liked (liked=1) or disliked (liked=0) profiles",
					map[string]string{"200": "Profile list", "400": "Bad liked parameter"}),
			},
			"/users/{userId}/likedcount": map[string]interface{}{
				"get": op("Number of profiles that like this one",
					map[string]string{"200": "Count"}),
			},
			"/users/{userId}/smashorpass": map[string]interface{}{
				"get": op("Up to 10 candidate profiles not yet decided on",
					map[string]string{"200": "Profile list"}),
			},
			"/messages/send": map[string]interface{}{
				"post": op("Send a message and receive a canned auto-reply",
					map[string]string{"200": "Sent", "400": "Missing field"}),
			},
		},
		"components": map[string]interface{}{
			"schemas": map[string]interface{}{
				"Profile": profileSchema,
				"Like":    likeSchema,
				"Message": messageSchema,
			},
		},
	}
}
