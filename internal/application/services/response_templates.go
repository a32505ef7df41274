package services

import "github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"

// Canned response text is maintained natively for English, Hindi, and
// Telugu. Replies in the remaining supported languages start from the
// English template and go through the translation provider afterwards.

// TemplateLanguage returns the language the canned templates can produce
// natively. Languages without native templates degrade to English.
func TemplateLanguage(code string) string {
	switch code {
	case "en", "hi", "te":
		return code
	default:
		return "en"
	}
}

type emergencyTemplate struct {
	Message     string
	Suggestions []string
}

type conditionTemplate struct {
	// Summary placeholders: condition name, symptoms, causes, treatments, precautions.
	Summary  string
	FollowUp string
	Caution  string
}

type intentTemplate struct {
	Response    string
	Suggestions []string
}

var emergencyTemplates = map[string]emergencyTemplate{
	"en": {
		Message: "This sounds like a medical emergency. Please call emergency services (108) or go to the nearest hospital immediately. Do not wait for symptoms to get worse.",
		Suggestions: []string{
			"Call 108 for an ambulance now",
			"Go to the nearest emergency room",
			"Stay calm and do not remain alone",
		},
	},
	"hi": {
		Message: "यह एक मेडिकल इमरजेंसी हो सकती है। कृपया तुरंत 108 पर कॉल करें या नजदीकी अस्पताल जाएं। लक्षणों के बिगड़ने का इंतजार न करें।",
		Suggestions: []string{
			"तुरंत 108 पर एम्बुलेंस के लिए कॉल करें",
			"नजदीकी आपातकालीन कक्ष में जाएं",
			"शांत रहें और अकेले न रहें",
		},
	},
	"te": {
		Message: "ఇది వైద్య అత్యవసర పరిస్థితి కావచ్చు. దయచేసి వెంటనే 108కి కాల్ చేయండి లేదా సమీప ఆసుపత్రికి వెళ్లండి. లక్షణాలు తీవ్రమయ్యే వరకు ఆగవద్దు.",
		Suggestions: []string{
			"వెంటనే అంబులెన్స్ కోసం 108కి కాల్ చేయండి",
			"సమీప అత్యవసర విభాగానికి వెళ్లండి",
			"ప్రశాంతంగా ఉండండి, ఒంటరిగా ఉండవద్దు",
		},
	},
}

var conditionTemplates = map[string]conditionTemplate{
	"en": {
		Summary:  "Here is what I know about %s. Symptoms: %s. Common causes: %s. Care: %s. Precautions: %s. This is general guidance, not a diagnosis.",
		FollowUp: "How long have you been experiencing symptoms of %s?",
		Caution:  "Note: you have reported these conditions: %s. Please mention them to your doctor.",
	},
	"hi": {
		Summary:  "%s के बारे में जानकारी। लक्षण: %s। सामान्य कारण: %s। देखभाल: %s। सावधानियां: %s। यह सामान्य जानकारी है, निदान नहीं।",
		FollowUp: "आपको %s के लक्षण कितने समय से हैं?",
		Caution:  "ध्यान दें: आपने ये स्थितियां दर्ज की हैं: %s। कृपया अपने डॉक्टर को इनके बारे में बताएं।",
	},
	"te": {
		Summary:  "%s గురించి సమాచారం. లక్షణాలు: %s. సాధారణ కారణాలు: %s. సంరక్షణ: %s. జాగ్రత్తలు: %s. ఇది సాధారణ సమాచారం మాత్రమే, వైద్య నిర్ధారణ కాదు.",
		FollowUp: "మీకు %s లక్షణాలు ఎంతకాలంగా ఉన్నాయి?",
		Caution:  "గమనిక: మీరు ఈ ఆరోగ్య సమస్యలను నమోదు చేశారు: %s. దయచేసి వాటి గురించి మీ వైద్యుడికి చెప్పండి.",
	},
}

var intentTemplates = map[entities.Intent]map[string]intentTemplate{
	entities.IntentSymptomInquiry: {
		"en": {
			Response: "I understand you're not feeling well. Could you describe your symptoms in more detail, like when they started and how severe they are? If symptoms are severe or getting worse, please see a doctor.",
			Suggestions: []string{
				"Note when your symptoms started",
				"Monitor your temperature",
				"See a doctor if symptoms worsen",
			},
		},
		"hi": {
			Response: "मुझे खेद है कि आप ठीक महसूस नहीं कर रहे हैं। कृपया अपने लक्षणों के बारे में और बताएं, जैसे वे कब शुरू हुए और कितने गंभीर हैं? यदि लक्षण गंभीर हों या बढ़ रहे हों, तो कृपया डॉक्टर से मिलें।",
			Suggestions: []string{
				"ध्यान दें कि लक्षण कब शुरू हुए",
				"अपना तापमान जांचते रहें",
				"लक्षण बढ़ने पर डॉक्टर से मिलें",
			},
		},
		"te": {
			Response: "మీరు బాగా లేరని తెలిసి బాధగా ఉంది. మీ లక్షణాల గురించి మరింత వివరంగా చెప్పగలరా, అవి ఎప్పుడు మొదలయ్యాయి, ఎంత తీవ్రంగా ఉన్నాయి? లక్షణాలు తీవ్రంగా ఉంటే దయచేసి వైద్యుడిని సంప్రదించండి.",
			Suggestions: []string{
				"లక్షణాలు ఎప్పుడు మొదలయ్యాయో గమనించండి",
				"మీ జ్వరాన్ని కొలుస్తూ ఉండండి",
				"లక్షణాలు పెరిగితే వైద్యుడిని కలవండి",
			},
		},
	},
	entities.IntentDiseaseInfo: {
		"en": {
			Response: "I can share general information about common conditions like fever, diabetes, malaria, or asthma. Which condition would you like to know about?",
			Suggestions: []string{
				"Ask about a specific condition",
				"Ask about symptoms or prevention",
				"Consult a doctor for a diagnosis",
			},
		},
		"hi": {
			Response: "मैं बुखार, मधुमेह, मलेरिया या अस्थमा जैसी सामान्य बीमारियों की जानकारी दे सकता हूं। आप किस बीमारी के बारे में जानना चाहते हैं?",
			Suggestions: []string{
				"किसी विशेष बीमारी के बारे में पूछें",
				"लक्षण या बचाव के बारे में पूछें",
				"निदान के लिए डॉक्टर से संपर्क करें",
			},
		},
		"te": {
			Response: "జ్వరం, మధుమేహం, మలేరియా, ఆస్తమా వంటి సాధారణ వ్యాధుల గురించి నేను సమాచారం ఇవ్వగలను. ఏ వ్యాధి గురించి తెలుసుకోవాలనుకుంటున్నారు?",
			Suggestions: []string{
				"ఒక నిర్దిష్ట వ్యాధి గురించి అడగండి",
				"లక్షణాలు లేదా నివారణ గురించి అడగండి",
				"నిర్ధారణ కోసం వైద్యుడిని సంప్రదించండి",
			},
		},
	},
	entities.IntentMedicationQuery: {
		"en": {
			Response: "I can't recommend specific medicines or doses. Please consult a doctor or pharmacist before taking any medication, and always follow the prescribed dosage.",
			Suggestions: []string{
				"Consult a pharmacist or doctor",
				"Read the label before use",
				"Never exceed the prescribed dose",
			},
		},
		"hi": {
			Response: "मैं कोई विशेष दवा या खुराक नहीं बता सकता। कोई भी दवा लेने से पहले डॉक्टर या फार्मासिस्ट से सलाह लें, और हमेशा बताई गई खुराक का पालन करें।",
			Suggestions: []string{
				"डॉक्टर या फार्मासिस्ट से सलाह लें",
				"उपयोग से पहले लेबल पढ़ें",
				"बताई गई खुराक से अधिक न लें",
			},
		},
		"te": {
			Response: "నేను నిర్దిష్ట మందులు లేదా మోతాదులను సూచించలేను. ఏ మందు అయినా తీసుకునే ముందు వైద్యుడిని లేదా ఫార్మసిస్ట్‌ని సంప్రదించండి, సూచించిన మోతాదును పాటించండి.",
			Suggestions: []string{
				"వైద్యుడిని లేదా ఫార్మసిస్ట్‌ని సంప్రదించండి",
				"వాడే ముందు లేబుల్ చదవండి",
				"సూచించిన మోతాదును మించవద్దు",
			},
		},
	},
	entities.IntentEmergency: {
		"en": {
			Response: "If this is a medical emergency, please call 108 or go to the nearest hospital immediately.",
			Suggestions: []string{
				"Call 108 now",
				"Go to the nearest hospital",
				"Stay with someone until help arrives",
			},
		},
		"hi": {
			Response: "यदि यह मेडिकल इमरजेंसी है, तो तुरंत 108 पर कॉल करें या नजदीकी अस्पताल जाएं।",
			Suggestions: []string{
				"अभी 108 पर कॉल करें",
				"नजदीकी अस्पताल जाएं",
				"मदद आने तक किसी के साथ रहें",
			},
		},
		"te": {
			Response: "ఇది వైద్య అత్యవసర పరిస్థితి అయితే, వెంటనే 108కి కాల్ చేయండి లేదా సమీప ఆసుపత్రికి వెళ్లండి.",
			Suggestions: []string{
				"ఇప్పుడే 108కి కాల్ చేయండి",
				"సమీప ఆసుపత్రికి వెళ్లండి",
				"సహాయం వచ్చే వరకు ఎవరితోనైనా ఉండండి",
			},
		},
	},
	entities.IntentGeneralHealth: {
		"en": {
			Response: "I'm here to help with your health questions. You can tell me your symptoms, ask about a condition, or ask for general health tips.",
			Suggestions: []string{
				"Eat a balanced diet",
				"Exercise for 30 minutes daily",
				"Sleep 7 to 8 hours",
			},
		},
		"hi": {
			Response: "मैं आपके स्वास्थ्य संबंधी सवालों में मदद के लिए यहां हूं। आप अपने लक्षण बता सकते हैं, किसी बीमारी के बारे में पूछ सकते हैं, या सेहत के सुझाव मांग सकते हैं।",
			Suggestions: []string{
				"संतुलित आहार लें",
				"रोज 30 मिनट व्यायाम करें",
				"7 से 8 घंटे की नींद लें",
			},
		},
		"te": {
			Response: "మీ ఆరోగ్య ప్రశ్నలకు సహాయం చేయడానికి నేను ఇక్కడ ఉన్నాను. మీ లక్షణాలు చెప్పవచ్చు, ఒక వ్యాధి గురించి అడగవచ్చు, లేదా ఆరోగ్య సూచనలు అడగవచ్చు.",
			Suggestions: []string{
				"సమతుల్య ఆహారం తీసుకోండి",
				"రోజూ 30 నిమిషాలు వ్యాయామం చేయండి",
				"7 నుంచి 8 గంటలు నిద్రపోండి",
			},
		},
	},
}

// fallbackTemplates covers every supported language so the apology never
// needs a translation call of its own.
var fallbackTemplates = map[string]intentTemplate{
	"en": {
		Response: "I'm sorry, I'm having trouble processing your request right now. Please try again in a moment, and consult a doctor if you need urgent help.",
		Suggestions: []string{
			"Try again in a moment",
			"Consult a doctor if this is urgent",
		},
	},
	"hi": {
		Response: "क्षमा करें, मुझे अभी आपके अनुरोध को संसाधित करने में समस्या हो रही है। कृपया थोड़ी देर बाद फिर से प्रयास करें, और तत्काल सहायता के लिए डॉक्टर से संपर्क करें।",
		Suggestions: []string{
			"थोड़ी देर बाद फिर से प्रयास करें",
			"तत्काल स्थिति में डॉक्टर से संपर्क करें",
		},
	},
	"te": {
		Response: "క్షమించండి, ప్రస్తుతం మీ అభ్యర్థనను ప్రాసెస్ చేయడంలో సమస్య ఉంది. దయచేసి కాసేపటి తర్వాత మళ్లీ ప్రయత్నించండి, అత్యవసరమైతే వైద్యుడిని సంప్రదించండి.",
		Suggestions: []string{
			"కాసేపటి తర్వాత మళ్లీ ప్రయత్నించండి",
			"అత్యవసరమైతే వైద్యుడిని సంప్రదించండి",
		},
	},
	"ta": {
		Response: "மன்னிக்கவும், உங்கள் கோரிக்கையை இப்போது செயல்படுத்துவதில் சிக்கல் உள்ளது. சிறிது நேரம் கழித்து மீண்டும் முயற்சிக்கவும், அவசரம் என்றால் மருத்துவரை அணுகவும்.",
		Suggestions: []string{
			"சிறிது நேரம் கழித்து மீண்டும் முயற்சிக்கவும்",
			"அவசரம் என்றால் மருத்துவரை அணுகவும்",
		},
	},
	"kn": {
		Response: "ಕ್ಷಮಿಸಿ, ಸದ್ಯ ನಿಮ್ಮ ಕೋರಿಕೆಯನ್ನು ಪ್ರಕ್ರಿಯೆಗೊಳಿಸಲು ತೊಂದರೆಯಾಗುತ್ತಿದೆ. ದಯವಿಟ್ಟು ಸ್ವಲ್ಪ ಸಮಯದ ನಂತರ ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ, ತುರ್ತು ಇದ್ದರೆ ವೈದ್ಯರನ್ನು ಸಂಪರ್ಕಿಸಿ.",
		Suggestions: []string{
			"ಸ್ವಲ್ಪ ಸಮಯದ ನಂತರ ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ",
			"ತುರ್ತು ಇದ್ದರೆ ವೈದ್ಯರನ್ನು ಸಂಪರ್ಕಿಸಿ",
		},
	},
	"ml": {
		Response: "ക്ഷമിക്കണം, നിങ്ങളുടെ അഭ്യർത്ഥന ഇപ്പോൾ പ്രോസസ്സ് ചെയ്യുന്നതിൽ തടസ്സമുണ്ട്. ദയവായി അൽപസമയത്തിനു ശേഷം വീണ്ടും ശ്രമിക്കുക, അടിയന്തരമാണെങ്കിൽ ഡോക്ടറെ സമീപിക്കുക.",
		Suggestions: []string{
			"അൽപസമയത്തിനു ശേഷം വീണ്ടും ശ്രമിക്കുക",
			"അടിയന്തരമാണെങ്കിൽ ഡോക്ടറെ സമീപിക്കുക",
		},
	},
}
