package lookup

import "go-complaint-report/internal/model"

// defaultEntries is the zone/ward/department assignment sheet in force for the
// municipal corporation. Sanitation wards carry SS role codes, Civil wards NS.
var defaultEntries = []model.MappingEntry{
	{Zone: "Aurangabad", Ward: "01-Birjapur", Department: model.DeptSanitation, Supervisor: "Yogesh Chaudhary SS1", Officer: "Shri Nihal Singh"},
	{Zone: "Mathura", Ward: "02-Ambedkar Nagar", Department: model.DeptSanitation, Supervisor: "Gopal SS2", Officer: "Shri Saurav Agarwal"},
	{Zone: "Bhuteshwar", Ward: "03-Girdharpur", Department: model.DeptSanitation, Supervisor: "Ravikant SS3", Officer: "Shri Rajbahadur Singh"},
	{Zone: "Mathura", Ward: "04-Ishapur Yamunapar", Department: model.DeptSanitation, Supervisor: "Rajesh SS4", Officer: "Shri Saurav Agarwal"},
	{Zone: "Mathura", Ward: "05-Bharatpur Gate", Department: model.DeptSanitation, Supervisor: "Mahendra SS5", Officer: "Shri Rajkumar Lawaniya"},
	{Zone: "Aurangabad", Ward: "06-Aduki", Department: model.DeptSanitation, Supervisor: "Devendra SS6", Officer: "Shri Nihal Singh"},
	{Zone: "Mathura", Ward: "07-Lohvan", Department: model.DeptSanitation, Supervisor: "Vijay SS7", Officer: "Shri Saurav Agarwal"},
	{Zone: "Vrindavan", Ward: "08-Atas", Department: model.DeptSanitation, Supervisor: "Jitendra SS8", Officer: "Shri Rakesh Kumar"},
	{Zone: "Vrindavan", Ward: "09-Gandhi Nagar", Department: model.DeptSanitation, Supervisor: "Jitendra SS9", Officer: "Shri Subash Chand"},
	{Zone: "Aurangabad", Ward: "10-Aurangabad First", Department: model.DeptSanitation, Supervisor: "Munesh SS10", Officer: "Shri Nihal Singh"},
	{Zone: "Aurangabad", Ward: "11-Tarsi", Department: model.DeptSanitation, Supervisor: "Ramsanehi SS11", Officer: "Shri Nihal Singh"},
	{Zone: "Bhuteshwar", Ward: "12-Radhe Shyam Colony", Department: model.DeptSanitation, Supervisor: "Kanhaiya SS12", Officer: "Shri Suresh Chand"},
	{Zone: "Vrindavan", Ward: "13-Sunrakh", Department: model.DeptSanitation, Supervisor: "Bacchu Singh SS13", Officer: "Shri Rakesh Kumar"},
	{Zone: "Mathura", Ward: "14-Lakshmi Nagar Yamunapar", Department: model.DeptSanitation, Supervisor: "Gopal Prashad Saini SS14", Officer: "Shri Saurav Agarwal"},
	{Zone: "Aurangabad", Ward: "15-Maholi First", Department: model.DeptSanitation, Supervisor: "Umesh SS15", Officer: "Shri Rajbahadur Singh"},
	{Zone: "Bhuteshwar", Ward: "16-Bakalpur", Department: model.DeptSanitation, Supervisor: "Surajpal SS16", Officer: "Shri Rajbahadur Singh"},
	{Zone: "Bhuteshwar", Ward: "17-Bairaagpura", Department: model.DeptSanitation, Supervisor: "Peetam Singh SS17", Officer: "Shri Suresh Chand"},
	{Zone: "Mathura", Ward: "18-General ganj", Department: model.DeptSanitation, Supervisor: "Premchand SS18", Officer: "Shri Rajkumar Lawaniya"},
	{Zone: "Mathura", Ward: "19-Ramnagar Yamunapar", Department: model.DeptSanitation, Supervisor: "Rajesh SS19", Officer: "Shri Saurav Agarwal"},
	{Zone: "Bhuteshwar", Ward: "20-Krishna Nagar First", Department: model.DeptSanitation, Supervisor: "Sanjesh SS20", Officer: "Shri Vipin Singh"},
	{Zone: "Vrindavan", Ward: "21-Chaitanya Bihar", Department: model.DeptSanitation, Supervisor: "Rinku SS21", Officer: "Shri Rakesh Kumar"},
	{Zone: "Mathura", Ward: "22-Badhri Nagar", Department: model.DeptSanitation, Supervisor: "Brijesh SS22", Officer: "Shri Suresh Chand"},
	{Zone: "Mathura", Ward: "23-Aheer Pada", Department: model.DeptSanitation, Supervisor: "Kunjilal SS23", Officer: "Shri Saurav Agarwal"},
	{Zone: "Bhuteshwar", Ward: "24-Sarai Azamabad", Department: model.DeptSanitation, Supervisor: "Sanjay & Aadesh SS24", Officer: "Shri Suresh Chand"},
	{Zone: "Vrindavan", Ward: "25-Chharaura", Department: model.DeptSanitation, Supervisor: "Jimmy SS25", Officer: "Shri Rakesh Kumar"},
	{Zone: "Mathura", Ward: "26-Naya Nagla", Department: model.DeptSanitation, Supervisor: "Satyam SS26", Officer: "Shri Saurav Agarwal"},
	{Zone: "Aurangabad", Ward: "27-Baad", Department: model.DeptSanitation, Supervisor: "Ravindra SS27", Officer: "Shri Nihal Singh"},
	{Zone: "Aurangabad", Ward: "28-Aurangabad Second", Department: model.DeptSanitation, Supervisor: "Mukesh SS28", Officer: "Shri Nihal Singh"},
	{Zone: "Aurangabad", Ward: "29-Koyla Alipur", Department: model.DeptSanitation, Supervisor: "Ramavtar SS29", Officer: "Shri Nihal Singh"},
	{Zone: "Bhuteshwar", Ward: "30-Krishna Nagar Second", Department: model.DeptSanitation, Supervisor: "Rohit SS30", Officer: "Shri Vipin Singh"},
	{Zone: "Bhuteshwar", Ward: "31-Navneet Nagar", Department: model.DeptSanitation, Supervisor: "Sonu SS31", Officer: "Shri Vipin Singh"},
	{Zone: "Aurangabad", Ward: "32-Ranchibagar", Department: model.DeptSanitation, Supervisor: "Naresh SS32", Officer: "Shri Nihal Singh"},
	{Zone: "Aurangabad", Ward: "33-Palikhera", Department: model.DeptSanitation, Supervisor: "Ajaykumar SS33", Officer: "Shri Rajbahadur Singh"},
	{Zone: "Vrindavan", Ward: "34-Radhaniwas", Department: model.DeptSanitation, Supervisor: "Dharmendra SS34", Officer: "Shri Subash Chand"},
	{Zone: "Mathura", Ward: "35-Bankhandi", Department: model.DeptSanitation, Supervisor: "Chandprakash SS35", Officer: "Shri Rajkumar Lawaniya"},
	{Zone: "Bhuteshwar", Ward: "36-Jaisingh Pura", Department: model.DeptSanitation, Supervisor: "Raman SS36", Officer: "Shri Suresh Chand"},
	{Zone: "Bhuteshwar", Ward: "37-Baldevpuri", Department: model.DeptSanitation, Supervisor: "Sanjeev SS37", Officer: "Shri Vipin Singh"},
	{Zone: "Aurangabad", Ward: "38-Civil lines", Department: model.DeptSanitation, Supervisor: "Jagdeesh SS38", Officer: "Shri Saurav Agarwal"},
	{Zone: "Bhuteshwar", Ward: "39-Mahavidhya Colony", Department: model.DeptSanitation, Supervisor: "Chandrashekhar SS39", Officer: "Shri Suresh Chand"},
	{Zone: "Mathura", Ward: "40-Rajkumar", Department: model.DeptSanitation, Supervisor: "Shishupal SS40", Officer: "Shri Suresh Chand"},
	{Zone: "Aurangabad", Ward: "41-Dhaulipiau", Department: model.DeptSanitation, Supervisor: "Sanjay SS41", Officer: "Shri Saurav Agarwal"},
	{Zone: "Mathura", Ward: "42-Manoharpur", Department: model.DeptSanitation, Supervisor: "Harilal SS42", Officer: "Shri Rajkumar Lawaniya"},
	{Zone: "Bhuteshwar", Ward: "43-Ganeshra", Department: model.DeptSanitation, Supervisor: "Hanif SS43", Officer: "Shri Rajbahadur Singh"},
	{Zone: "Bhuteshwar", Ward: "44-Radhika Bihar", Department: model.DeptSanitation, Supervisor: "Mukesh SS44", Officer: "Shri Vipin Singh"},
	{Zone: "Bhuteshwar", Ward: "45-Birla Mandir", Department: model.DeptSanitation, Supervisor: "Nemichand Chauhan SS45", Officer: "Shri Suresh Chand"},
	{Zone: "Bhuteshwar", Ward: "46-Radha Nagar", Department: model.DeptSanitation, Supervisor: "Rajan SS46", Officer: "Shri Vipin Singh"},
	{Zone: "Bhuteshwar", Ward: "47-Dwarkapuri", Department: model.DeptSanitation, Supervisor: "Madhukar SS47", Officer: "Shri Vipin Singh"},
	{Zone: "Bhuteshwar", Ward: "48-Satoha Asangpur", Department: model.DeptSanitation, Supervisor: "Anurag SS48", Officer: "Shri Rajbahadur Singh"},
	{Zone: "Mathura", Ward: "49-Daimpiriyal Nagar", Department: model.DeptSanitation, Supervisor: "Premchand & Rajkumar SS49", Officer: "Shri Rajkumar Lawaniya"},
	{Zone: "Vrindavan", Ward: "50-Patharpura", Department: model.DeptSanitation, Supervisor: "Aakash SS50", Officer: "Shri Subash Chand"},
	{Zone: "Vrindavan", Ward: "51-Gaushala Nagar", Department: model.DeptSanitation, Supervisor: "Kishan Singh SS51", Officer: "Shri Subash Chand"},
	{Zone: "Aurangabad", Ward: "52-Chandrapuri", Department: model.DeptSanitation, Supervisor: "Ashish SS52", Officer: "Shri Saurav Agarwal"},
	{Zone: "Mathura", Ward: "53-Krishna puri", Department: model.DeptSanitation, Supervisor: "Suresh SS53", Officer: "Shri Saurav Agarwal"},
	{Zone: "Bhuteshwar", Ward: "54-Pratap Nagar", Department: model.DeptSanitation, Supervisor: "Mahesh SS54", Officer: "Shri Vipin Singh"},
	{Zone: "Bhuteshwar", Ward: "55-Govind Nagar", Department: model.DeptSanitation, Supervisor: "Dinesh SS55", Officer: "Shri Vipin Singh"},
	{Zone: "Bhuteshwar", Ward: "56-Mandi Randas", Department: model.DeptSanitation, Supervisor: "Nashir SS56", Officer: "Shri Rajkumar Lawaniya"},
	{Zone: "Aurangabad", Ward: "57-Balajipuram", Department: model.DeptSanitation, Supervisor: "Makrand SS57", Officer: "Shri Saurav Agarwal"},
	{Zone: "Bhuteshwar", Ward: "58-Gau Ghat", Department: model.DeptSanitation, Supervisor: "Preetam SS58", Officer: "Shri Rajkumar Lawaniya"},
	{Zone: "Aurangabad", Ward: "59-Maholi Second", Department: model.DeptSanitation, Supervisor: "Dharmveer SS59", Officer: "Shri Rajbahadur Singh"},
	{Zone: "Bhuteshwar", Ward: "60-Jagannath Puri", Department: model.DeptSanitation, Supervisor: "Gyan SS60", Officer: "Shri Suresh Chand"},
	{Zone: "Mathura", Ward: "61-Chaubia para", Department: model.DeptSanitation, Supervisor: "Suresh Chand SS61", Officer: "Shri Rajkumar Lawaniya"},
	{Zone: "Vrindavan", Ward: "62-Mathura Darwaza", Department: model.DeptSanitation, Supervisor: "Ranjeet SS62", Officer: "Shri Subash Chand"},
	{Zone: "Mathura", Ward: "63-Maliyaan Sadar", Department: model.DeptSanitation, Supervisor: "Shubash SS63", Officer: "Shri Saurav Agarwal"},
	{Zone: "Mathura", Ward: "64-Ghati Bahalray", Department: model.DeptSanitation, Supervisor: "Mahendra SS64", Officer: "Shri Rajkumar Lawaniya"},
	{Zone: "Mathura", Ward: "65-Holi Gali", Department: model.DeptSanitation, Supervisor: "Suresh Sethi SS65", Officer: "Shri Rajkumar Lawaniya"},
	{Zone: "Vrindavan", Ward: "66-Keshighat", Department: model.DeptSanitation, Supervisor: "Madan SS66", Officer: "Shri Subash Chand"},
	{Zone: "Vrindavan", Ward: "67-Kemar Van", Department: model.DeptSanitation, Supervisor: "Jawala Singh SS67", Officer: "Shri Rakesh Kumar"},
	{Zone: "Aurangabad", Ward: "68-Shanti Nagar", Department: model.DeptSanitation, Supervisor: "Umesh SS68", Officer: "Shri Vipin Singh"},
	{Zone: "Vrindavan", Ward: "69-Ratan Chhatri", Department: model.DeptSanitation, Supervisor: "Bacchu Singh SS69", Officer: "Shri Rakesh Kumar"},
	{Zone: "Vrindavan", Ward: "70-Biharipur", Department: model.DeptSanitation, Supervisor: "Vivek SS70", Officer: "Shri Subash Chand"},
	{Zone: "Aurangabad", Ward: "01-Birjapur", Department: model.DeptCivil, Supervisor: "Akshay NS1", Officer: "Shri Sandeep Kumar"},
	{Zone: "Mathura", Ward: "02-Ambedkar Nagar", Department: model.DeptCivil, Supervisor: "Amrish NS2", Officer: "Shri Umesh Kumar"},
	{Zone: "Bhuteshwar", Ward: "03-Girdharpur", Department: model.DeptCivil, Supervisor: "Mukesh NS3", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Mathura", Ward: "04-Ishapur Yamunapar", Department: model.DeptCivil, Supervisor: "Amrish NS4", Officer: "Shri Umesh Kumar"},
	{Zone: "Mathura", Ward: "05-Bharatpur Gate", Department: model.DeptCivil, Supervisor: "Amit NS5", Officer: "Shri Imran Habib Ansari"},
	{Zone: "Aurangabad", Ward: "06-Aduki", Department: model.DeptCivil, Supervisor: "Sanjay NS6", Officer: "Shri Sandeep Kumar"},
	{Zone: "Mathura", Ward: "07-Lohvan", Department: model.DeptCivil, Supervisor: "Amrish NS7", Officer: "Shri Umesh Kumar"},
	{Zone: "Vrindavan", Ward: "08-Atas", Department: model.DeptCivil, Supervisor: "Vijay NS8", Officer: "Shri Arun Kumar"},
	{Zone: "Vrindavan", Ward: "09-Gandhi Nagar", Department: model.DeptCivil, Supervisor: "Vijay NS9", Officer: "Shri Arun Kumar"},
	{Zone: "Aurangabad", Ward: "10-Aurangabad First", Department: model.DeptCivil, Supervisor: "Akshay NS10", Officer: "Shri Sandeep Kumar"},
	{Zone: "Aurangabad", Ward: "11-Tarsi", Department: model.DeptCivil, Supervisor: "Sanjay NS11", Officer: "Shri Sandeep Kumar"},
	{Zone: "Bhuteshwar", Ward: "12-Radhe Shyam Colony", Department: model.DeptCivil, Supervisor: "Ankit NS12", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Vrindavan", Ward: "13-Sunrakh", Department: model.DeptCivil, Supervisor: "Vijay NS13", Officer: "Shri Arun Kumar"},
	{Zone: "Mathura", Ward: "14-Lakshmi Nagar Yamunapar", Department: model.DeptCivil, Supervisor: "Amrish NS14", Officer: "Shri Umesh Kumar"},
	{Zone: "Aurangabad", Ward: "15-Maholi First", Department: model.DeptCivil, Supervisor: "Sanjay NS15", Officer: "Shri Sandeep Kumar"},
	{Zone: "Bhuteshwar", Ward: "16-Bakalpur", Department: model.DeptCivil, Supervisor: "Mukesh NS16", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Bhuteshwar", Ward: "17-Bairaagpura", Department: model.DeptCivil, Supervisor: "Ankit NS17", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Mathura", Ward: "18-General ganj", Department: model.DeptCivil, Supervisor: "Hemant NS18", Officer: "Shri Umesh Kumar"},
	{Zone: "Mathura", Ward: "19-Ramnagar Yamunapar", Department: model.DeptCivil, Supervisor: "Praveen NS19", Officer: "Shri Umesh Kumar"},
	{Zone: "Bhuteshwar", Ward: "20-Krishna Nagar First", Department: model.DeptCivil, Supervisor: "Bacchu Singh NS20", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Vrindavan", Ward: "21-Chaitanya Bihar", Department: model.DeptCivil, Supervisor: "Tejveer NS21", Officer: "Shri Arun Kumar"},
	{Zone: "Mathura", Ward: "22-Badhri Nagar", Department: model.DeptCivil, Supervisor: "Amit NS22", Officer: "Shri Imran Habib Ansari"},
	{Zone: "Mathura", Ward: "23-Aheer Pada", Department: model.DeptCivil, Supervisor: "Praveen NS23", Officer: "Shri Umesh Kumar"},
	{Zone: "Bhuteshwar", Ward: "24-Sarai Azamabad", Department: model.DeptCivil, Supervisor: "Ankit NS24", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Vrindavan", Ward: "25-Chharaura", Department: model.DeptCivil, Supervisor: "Tejveer NS25", Officer: "Shri Arun Kumar"},
	{Zone: "Mathura", Ward: "26-Naya Nagla", Department: model.DeptCivil, Supervisor: "Bacchu Singh NS26", Officer: "Shri Imran Habib Ansari"},
	{Zone: "Aurangabad", Ward: "27-Baad", Department: model.DeptCivil, Supervisor: "Sanjay NS27", Officer: "Shri Sandeep Kumar"},
	{Zone: "Aurangabad", Ward: "28-Aurangabad Second", Department: model.DeptCivil, Supervisor: "Akshay NS28", Officer: "Shri Sandeep Kumar"},
	{Zone: "Aurangabad", Ward: "29-Koyla Alipur", Department: model.DeptCivil, Supervisor: "Sanjay NS29", Officer: "Shri Sandeep Kumar"},
	{Zone: "Bhuteshwar", Ward: "30-Krishna Nagar Second", Department: model.DeptCivil, Supervisor: "Bacchu Singh NS30", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Bhuteshwar", Ward: "31-Navneet Nagar", Department: model.DeptCivil, Supervisor: "Amit NS31", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Aurangabad", Ward: "32-Ranchibagar", Department: model.DeptCivil, Supervisor: "Sanjay NS32", Officer: "Shri Sandeep Kumar"},
	{Zone: "Aurangabad", Ward: "33-Palikhera", Department: model.DeptCivil, Supervisor: "Sanjay NS33", Officer: "Shri Sandeep Kumar"},
	{Zone: "Vrindavan", Ward: "34-Radhaniwas", Department: model.DeptCivil, Supervisor: "Tejveer NS34", Officer: "Shri Arun Kumar"},
	{Zone: "Mathura", Ward: "35-Bankhandi", Department: model.DeptCivil, Supervisor: "Bacchu Singh NS35", Officer: "Shri Imran Habib Ansari"},
	{Zone: "Bhuteshwar", Ward: "36-Jaisingh Pura", Department: model.DeptCivil, Supervisor: "Ankit NS36", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Bhuteshwar", Ward: "37-Baldevpuri", Department: model.DeptCivil, Supervisor: "Mukesh NS37", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Aurangabad", Ward: "38-Civil lines", Department: model.DeptCivil, Supervisor: "Akshay NS38", Officer: "Shri Sandeep Kumar"},
	{Zone: "Bhuteshwar", Ward: "39-Mahavidhya Colony", Department: model.DeptCivil, Supervisor: "Ankit NS39", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Mathura", Ward: "40-Rajkumar", Department: model.DeptCivil, Supervisor: "Amit NS40", Officer: "Shri Imran Habib Ansari"},
	{Zone: "Aurangabad", Ward: "41-Dhaulipiau", Department: model.DeptCivil, Supervisor: "Akshay NS41", Officer: "Shri Sandeep Kumar"},
	{Zone: "Mathura", Ward: "42-Manoharpur", Department: model.DeptCivil, Supervisor: "Amit NS42", Officer: "Shri Imran Habib Ansari"},
	{Zone: "Bhuteshwar", Ward: "43-Ganeshra", Department: model.DeptCivil, Supervisor: "Mukesh NS43", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Bhuteshwar", Ward: "44-Radhika Bihar", Department: model.DeptCivil, Supervisor: "Praveen NS44", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Bhuteshwar", Ward: "45-Birla Mandir", Department: model.DeptCivil, Supervisor: "Ankit NS45", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Bhuteshwar", Ward: "46-Radha Nagar", Department: model.DeptCivil, Supervisor: "Ankit NS46", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Bhuteshwar", Ward: "47-Dwarkapuri", Department: model.DeptCivil, Supervisor: "Mukesh NS47", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Bhuteshwar", Ward: "48-Satoha Asangpur", Department: model.DeptCivil, Supervisor: "Mukesh NS48", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Mathura", Ward: "49-Daimpiriyal Nagar", Department: model.DeptCivil, Supervisor: "Bacchu Singh NS49", Officer: "Shri Imran Habib Ansari"},
	{Zone: "Vrindavan", Ward: "50-Patharpura", Department: model.DeptCivil, Supervisor: "Tejveer NS50", Officer: "Shri Arun Kumar"},
	{Zone: "Vrindavan", Ward: "51-Gaushala Nagar", Department: model.DeptCivil, Supervisor: "Tejveer NS51", Officer: "Shri Arun Kumar"},
	{Zone: "Aurangabad", Ward: "52-Chandrapuri", Department: model.DeptCivil, Supervisor: "Akshay NS52", Officer: "Shri Sandeep Kumar"},
	{Zone: "Mathura", Ward: "53-Krishna puri", Department: model.DeptCivil, Supervisor: "Praveen NS53", Officer: "Shri Umesh Kumar"},
	{Zone: "Bhuteshwar", Ward: "54-Pratap Nagar", Department: model.DeptCivil, Supervisor: "Mukesh NS54", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Bhuteshwar", Ward: "55-Govind Nagar", Department: model.DeptCivil, Supervisor: "Ankit NS55", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Bhuteshwar", Ward: "56-Mandi Randas", Department: model.DeptCivil, Supervisor: "Praveen NS56", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Aurangabad", Ward: "57-Balajipuram", Department: model.DeptCivil, Supervisor: "Akshay NS57", Officer: "Shri Sandeep Kumar"},
	{Zone: "Bhuteshwar", Ward: "58-Gau Ghat", Department: model.DeptCivil, Supervisor: "Ankit NS58", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Aurangabad", Ward: "59-Maholi Second", Department: model.DeptCivil, Supervisor: "Sanjay NS59", Officer: "Shri Sandeep Kumar"},
	{Zone: "Bhuteshwar", Ward: "60-Jagannath Puri", Department: model.DeptCivil, Supervisor: "Amit NS60", Officer: "Shri Vibhor Vishwakarma"},
	{Zone: "Mathura", Ward: "61-Chaubia para", Department: model.DeptCivil, Supervisor: "Bacchu Singh NS61", Officer: "Shri Imran Habib Ansari"},
	{Zone: "Vrindavan", Ward: "62-Mathura Darwaza", Department: model.DeptCivil, Supervisor: "Tejveer NS62", Officer: "Shri Arun Kumar"},
	{Zone: "Mathura", Ward: "63-Maliyaan Sadar", Department: model.DeptCivil, Supervisor: "Praveen NS63", Officer: "Shri Umesh Kumar"},
	{Zone: "Mathura", Ward: "64-Ghati Bahalray", Department: model.DeptCivil, Supervisor: "Bacchu Singh NS64", Officer: "Shri Imran Habib Ansari"},
	{Zone: "Mathura", Ward: "65-Holi Gali", Department: model.DeptCivil, Supervisor: "Hemant NS65", Officer: "Shri Imran Habib Ansari"},
	{Zone: "Vrindavan", Ward: "66-Keshighat", Department: model.DeptCivil, Supervisor: "Vijay NS66", Officer: "Shri Arun Kumar"},
	{Zone: "Vrindavan", Ward: "67-Kemar Van", Department: model.DeptCivil, Supervisor: "Tejveer NS67", Officer: "Shri Arun Kumar"},
	{Zone: "Aurangabad", Ward: "68-Shanti Nagar", Department: model.DeptCivil, Supervisor: "Akshay NS68", Officer: "Shri Sandeep Kumar"},
	{Zone: "Vrindavan", Ward: "69-Ratan Chhatri", Department: model.DeptCivil, Supervisor: "Vijay NS69", Officer: "Shri Arun Kumar"},
	{Zone: "Vrindavan", Ward: "70-Biharipur", Department: model.DeptCivil, Supervisor: "Vijay NS70", Officer: "Shri Arun Kumar"},
}
