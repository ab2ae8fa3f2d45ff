// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package i18n

var catalogs = map[Language]map[string]string{
	Arabic: {
		// Verdicts
		"noResults":        "لا توجد نتائج بعد",
		"clearChoice":      "{option} هو خيارك الواضح",
		"narrowMargin":     "{option} هو الأفضل بفارق ضئيل",
		"betterBy":         "{option} أفضل بـ {points} نقطة ({percent}٪)",
		"decisivelyBetter": "{option} أفضل بشكل حاسم بـ {points} نقطة",
		"optionsEqual":     "كل الخيارات متساوية",
		"optionsSomeEqual": "{option} متعادل في الترتيب مع خيارات أخرى",

		// Validation
		"enterTitle":        "الرجاء إدخال عنوان للقرار",
		"enterTwoOptions":   "الرجاء إدخال خيارين على الأقل",
		"enterOneCriterion": "الرجاء إدخال معيار واحد على الأقل",
		"rateAllOptions":    "الرجاء تقييم جميع الخيارات لكل معيار",
		"ratingOutOfRange":  "يجب أن يكون كل تقييم بين 1 و 10",
		"idsNotUnique":      "يجب أن يكون لكل خيار ومعيار معرف فريد",

		// Errors
		"decisionNotFound":      "لم يتم العثور على القرار",
		"errorLoadingDecision":  "حدث خطأ أثناء تحميل القرار",
		"errorSavingDecision":   "حدث خطأ أثناء حفظ القرار",
		"errorUpdatingDecision": "حدث خطأ أثناء تحديث القرار",
		"errorClearingData":     "حدث خطأ أثناء مسح البيانات",
		"insightsUnavailable":   "نأسف لعدم توفر هذه الميزة في الوقت الحالي، شكرا لتفهمكم.",
		"dataCleared":           "تم مسح جميع بيانات القرارات",

		// Report
		"results":             "النتائج",
		"detailedBreakdown":   "تحليل مفصل",
		"criteria":            "المعايير",
		"total":               "المجموع",
		"standard":            "المعيار",
		"option":              "الخيار",
		"outOf":               "من",
		"bestOption":          "الخيار الأفضل لك هو: ",
		"recommendations":     "إن أردت تطوير بعض المعايير إليك التوصيات",
		"recommendation":      "ينصح بتحسينه بنسبة",
		"allCriteriaComplete": "جميع المعايير مكتملة لهذا الخيار، لا توجد توصيات.",
		"criterionComplete":   "(مكتمل)",
		"aiInsights":          "تحليل الذكاء الاصطناعي",

		// Sharing
		"shareTitle":   "قراري في قراري",
		"shareMessage": "استخدمت قراري لمساعدتي في اتخاذ قرار \"{title}\" وكانت النتيجة: {result}! قم بتجربة التطبيق الآن {url}",
	},
	English: {
		"noResults":        "No results yet.",
		"clearChoice":      "{option} is your clear choice",
		"narrowMargin":     "{option} wins by a narrow margin",
		"betterBy":         "{option} is better by {points} points ({percent}%)",
		"decisivelyBetter": "{option} is decisively better by {points} points",
		"optionsEqual":     "All options are equal.",
		"optionsSomeEqual": "{option} is tied in rank with other options.",

		"enterTitle":        "Please enter a title for your decision",
		"enterTwoOptions":   "Please enter at least two options",
		"enterOneCriterion": "Please enter at least one criterion",
		"rateAllOptions":    "Please rate all options for each criterion",
		"ratingOutOfRange":  "Every rating must be between 1 and 10",
		"idsNotUnique":      "Every option and criterion needs its own unique ID",

		"decisionNotFound":      "Decision not found",
		"errorLoadingDecision":  "An error occurred while loading the decision",
		"errorSavingDecision":   "An error occurred while saving your decision",
		"errorUpdatingDecision": "An error occurred while updating your decision",
		"errorClearingData":     "An error occurred while clearing data",
		"insightsUnavailable":   "Sorry, this feature is not available right now. Thank you for your understanding.",
		"dataCleared":           "All decision data has been cleared",

		"results":             "Results",
		"detailedBreakdown":   "Detailed Breakdown",
		"criteria":            "Criteria",
		"total":               "Total",
		"standard":            "Standard",
		"option":              "Option",
		"outOf":               "of",
		"bestOption":          "The best option for you is: ",
		"recommendations":     "If you want to develop some standards, here are the recommendations.",
		"recommendation":      "is recommended to improve by",
		"allCriteriaComplete": "All criteria are met for this option, no recommendations.",
		"criterionComplete":   "(completed)",
		"aiInsights":          "AI Insights",

		"shareTitle":   "My qarari Decision",
		"shareMessage": "I used qarari to help me decide on \"{title}\" and the result was: {result}! Try the app now {url}",
	},
}
