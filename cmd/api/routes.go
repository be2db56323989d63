package main

import "net/http"

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	standard := func(next http.Handler) http.Handler {
		return app.recoverPanic(app.logAndTraceRequest(secureHeaders(app.timeout(next))))
	}
	handle := func(pattern string, handlerFunc http.HandlerFunc) {
		mux.Handle(pattern, standard(handlerFunc))
	}

	handle("GET /api/health", app.healthGET)

	handle("GET /api/exercises", app.exercisesGET)
	handle("GET /api/exercises/{name}/info", app.exerciseInfoGET)
	handle("GET /api/workout-types", app.workoutTypesGET)
	handle("GET /api/equipment", app.equipmentGET)
	handle("GET /api/goals", app.goalsGET)

	handle("POST /api/generate-plan", app.generatePlanPOST)
	handle("POST /api/calculate-difficulty", app.calculateDifficultyPOST)
	handle("POST /api/daily-challenge", app.dailyChallengePOST)
	handle("POST /api/daily-challenges-batch", app.dailyChallengesBatchPOST)

	return app.cors.Handler(mux)
}
