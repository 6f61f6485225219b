package memory

import "github.com/Mrvatsan/APTITUDE-AI/internal/domain"

// DefaultTopic is the pool used for topics without a dedicated bank.
const DefaultTopic = "General Aptitude"

// DefaultQuestionBank returns the built-in offline question pools keyed by topic.
func DefaultQuestionBank() map[string][]domain.Question {
	return map[string][]domain.Question{
		"Number System": {
			{Text: "What is the sum of the first 10 natural numbers?", Options: []string{"45", "50", "55", "60"}, CorrectOptionIndex: 2, Solution: "Sum = n(n+1)/2 = 10×11/2 = 55", Difficulty: "easy", Category: "Number System"},
			{Text: "Find the unit digit of 7^25.", Options: []string{"1", "3", "7", "9"}, CorrectOptionIndex: 2, Solution: "Unit digits of powers of 7 cycle: 7,9,3,1. 25 mod 4 = 1, so unit digit is 7.", Difficulty: "medium", Category: "Number System"},
			{Text: "How many prime numbers are between 1 and 20?", Options: []string{"6", "7", "8", "9"}, CorrectOptionIndex: 2, Solution: "Primes: 2,3,5,7,11,13,17,19 = 8 primes", Difficulty: "easy", Category: "Number System"},
			{Text: "What is the remainder when 17^23 is divided by 16?", Options: []string{"0", "1", "15", "17"}, CorrectOptionIndex: 1, Solution: "17 = 16+1, so 17^23 mod 16 = 1^23 = 1", Difficulty: "medium", Category: "Number System"},
			{Text: "Find the LCM of 12 and 18.", Options: []string{"24", "36", "72", "108"}, CorrectOptionIndex: 1, Solution: "LCM(12,18) = 36", Difficulty: "easy", Category: "Number System"},
			{Text: "The product of two numbers is 120 and their HCF is 6. Find their LCM.", Options: []string{"15", "20", "30", "720"}, CorrectOptionIndex: 1, Solution: "HCF × LCM = Product. LCM = 120/6 = 20", Difficulty: "medium", Category: "Number System"},
			{Text: "What is 25% of 80?", Options: []string{"15", "20", "25", "30"}, CorrectOptionIndex: 1, Solution: "25% of 80 = 0.25 × 80 = 20", Difficulty: "easy", Category: "Number System"},
			{Text: "Find the smallest 4-digit number divisible by 12.", Options: []string{"1000", "1008", "1012", "1020"}, CorrectOptionIndex: 1, Solution: "1000 ÷ 12 = 83.33. Next: 84 × 12 = 1008", Difficulty: "medium", Category: "Number System"},
			{Text: "What is the square root of 144?", Options: []string{"10", "11", "12", "13"}, CorrectOptionIndex: 2, Solution: "√144 = 12", Difficulty: "easy", Category: "Number System"},
			{Text: "If a number is divisible by both 3 and 5, it must be divisible by:", Options: []string{"8", "10", "15", "30"}, CorrectOptionIndex: 2, Solution: "LCM of 3 and 5 is 15", Difficulty: "easy", Category: "Number System"},
			{Text: "Find the value of 2^8.", Options: []string{"128", "256", "512", "1024"}, CorrectOptionIndex: 1, Solution: "2^8 = 256", Difficulty: "easy", Category: "Number System"},
			{Text: "How many factors does 36 have?", Options: []string{"6", "7", "8", "9"}, CorrectOptionIndex: 3, Solution: "36 = 2² × 3². Factors = (2+1)(2+1) = 9", Difficulty: "medium", Category: "Number System"},
			{Text: "What is the cube of 5?", Options: []string{"15", "25", "125", "625"}, CorrectOptionIndex: 2, Solution: "5³ = 125", Difficulty: "easy", Category: "Number System"},
			{Text: "Find the unit digit of 3^100.", Options: []string{"1", "3", "7", "9"}, CorrectOptionIndex: 0, Solution: "Powers of 3 cycle: 3,9,27,81. 100 mod 4 = 0, so unit digit is 1", Difficulty: "medium", Category: "Number System"},
			{Text: "What is the sum of first 20 even numbers?", Options: []string{"380", "400", "420", "440"}, CorrectOptionIndex: 2, Solution: "Sum = n(n+1) = 20×21 = 420", Difficulty: "medium", Category: "Number System"},
			{Text: "How many two-digit prime numbers are there?", Options: []string{"21", "25", "30", "15"}, CorrectOptionIndex: 0, Solution: "There are 21 two-digit primes from 11 to 97", Difficulty: "hard", Category: "Number System"},
			{Text: "Find the greatest 3-digit number divisible by 8.", Options: []string{"992", "996", "998", "1000"}, CorrectOptionIndex: 0, Solution: "999 ÷ 8 = 124.875. 124 × 8 = 992", Difficulty: "easy", Category: "Number System"},
			{Text: "What is 15² - 14²?", Options: []string{"27", "28", "29", "30"}, CorrectOptionIndex: 2, Solution: "15² - 14² = (15+14)(15-14) = 29", Difficulty: "easy", Category: "Number System"},
			{Text: "The sum of two numbers is 25 and their product is 144. Find the numbers.", Options: []string{"9, 16", "8, 17", "12, 13", "10, 15"}, CorrectOptionIndex: 0, Solution: "x + y = 25, xy = 144. Numbers are 9 and 16", Difficulty: "medium", Category: "Number System"},
			{Text: "Find the value of √(81 × 49).", Options: []string{"56", "63", "72", "49"}, CorrectOptionIndex: 1, Solution: "√(81 × 49) = 9 × 7 = 63", Difficulty: "easy", Category: "Number System"},
			{Text: "What is the remainder when 123456 is divided by 9?", Options: []string{"0", "3", "6", "9"}, CorrectOptionIndex: 2, Solution: "Sum of digits = 1+2+3+4+5+6 = 21. 21 mod 9 = 3", Difficulty: "medium", Category: "Number System"},
			{Text: "How many digits are there in 2^10?", Options: []string{"3", "4", "5", "6"}, CorrectOptionIndex: 1, Solution: "2^10 = 1024, which has 4 digits", Difficulty: "easy", Category: "Number System"},
		},
		"Average": {
			{Text: "The average of 5 numbers is 20. What is their sum?", Options: []string{"80", "100", "120", "25"}, CorrectOptionIndex: 1, Solution: "Sum = Average × Count = 20 × 5 = 100", Difficulty: "easy", Category: "Average"},
			{Text: "Find the average of first 10 natural numbers.", Options: []string{"5", "5.5", "6", "10"}, CorrectOptionIndex: 1, Solution: "Avg = (1+10)/2 = 5.5", Difficulty: "easy", Category: "Average"},
			{Text: "The average of 4 numbers is 25. If one number is removed, average becomes 20. Find the removed number.", Options: []string{"30", "35", "40", "45"}, CorrectOptionIndex: 2, Solution: "Sum of 4 = 100. Sum of 3 = 60. Removed = 40", Difficulty: "medium", Category: "Average"},
			{Text: "Average age of 5 students is 18. A new student joins making average 17. Find new students age.", Options: []string{"10", "11", "12", "13"}, CorrectOptionIndex: 2, Solution: "Old sum = 90. New sum = 102. New age = 102-90 = 12", Difficulty: "medium", Category: "Average"},
			{Text: "The average of 10, 20, 30, 40 is:", Options: []string{"20", "25", "30", "100"}, CorrectOptionIndex: 1, Solution: "Avg = (10+20+30+40)/4 = 100/4 = 25", Difficulty: "easy", Category: "Average"},
			{Text: "Average of 3 numbers is 15. Two numbers are 10 and 20. Find the third.", Options: []string{"10", "15", "20", "25"}, CorrectOptionIndex: 1, Solution: "Sum = 45. Third = 45 - 10 - 20 = 15", Difficulty: "easy", Category: "Average"},
			{Text: "A batsman scores 87 runs increasing average by 3 from 39. How many matches played now?", Options: []string{"12", "14", "16", "18"}, CorrectOptionIndex: 2, Solution: "Let n be matches. 39(n-1)+87=42n, n=16", Difficulty: "hard", Category: "Average"},
			{Text: "Average of first 5 multiples of 3 is:", Options: []string{"6", "9", "12", "15"}, CorrectOptionIndex: 1, Solution: "Multiples: 3,6,9,12,15. Avg = 45/5 = 9", Difficulty: "easy", Category: "Average"},
			{Text: "The average weight of A, B, C is 45 kg. If D joins, average becomes 43 kg. Find Ds weight.", Options: []string{"35", "37", "39", "41"}, CorrectOptionIndex: 1, Solution: "Sum of ABC = 135. Sum of ABCD = 172. D = 37", Difficulty: "medium", Category: "Average"},
			{Text: "Average of 20, 30, x is 30. Find x.", Options: []string{"30", "35", "40", "45"}, CorrectOptionIndex: 2, Solution: "Sum = 90. x = 90 - 20 - 30 = 40", Difficulty: "easy", Category: "Average"},
			{Text: "The average of first 50 natural numbers is:", Options: []string{"25", "25.5", "26", "50"}, CorrectOptionIndex: 1, Solution: "Avg = (1+50)/2 = 25.5", Difficulty: "easy", Category: "Average"},
			{Text: "Average of 5 consecutive odd numbers starting from 3 is:", Options: []string{"5", "7", "9", "11"}, CorrectOptionIndex: 1, Solution: "Numbers: 3,5,7,9,11. Avg = 35/5 = 7", Difficulty: "easy", Category: "Average"},
			{Text: "If average of 8 numbers is 15, their sum is:", Options: []string{"100", "110", "120", "130"}, CorrectOptionIndex: 2, Solution: "Sum = 8 × 15 = 120", Difficulty: "easy", Category: "Average"},
			{Text: "Average age of a family of 5 is 30 years. If a baby is born, new average is:", Options: []string{"24", "25", "26", "27"}, CorrectOptionIndex: 1, Solution: "Total = 150. New total = 150+0 = 150. Avg = 150/6 = 25", Difficulty: "medium", Category: "Average"},
			{Text: "The average of 11 results is 60. First 6 have average 58, last 6 have 63. Find 6th result.", Options: []string{"66", "68", "70", "72"}, CorrectOptionIndex: 0, Solution: "Total=660. First6=348. Last6=378. 6th=348+378-660=66", Difficulty: "hard", Category: "Average"},
			{Text: "Average of all even numbers from 2 to 20 is:", Options: []string{"10", "11", "12", "22"}, CorrectOptionIndex: 1, Solution: "Numbers: 2,4,6...20. Avg = (2+20)/2 = 11", Difficulty: "easy", Category: "Average"},
			{Text: "A student has average of 75 in 4 subjects. What should he score in 5th to get 80?", Options: []string{"95", "100", "85", "90"}, CorrectOptionIndex: 1, Solution: "Need total = 400. Has 300. Need 100", Difficulty: "medium", Category: "Average"},
			{Text: "Average of 7 consecutive numbers is 33. Largest is:", Options: []string{"35", "36", "37", "39"}, CorrectOptionIndex: 1, Solution: "Middle = 33. Largest = 33 + 3 = 36", Difficulty: "easy", Category: "Average"},
			{Text: "The average height of 30 students is 150 cm. 5 students of average 140 cm leave. New average?", Options: []string{"151", "152", "153", "154"}, CorrectOptionIndex: 1, Solution: "Total=4500. Leave=700. New=(4500-700)/25=152", Difficulty: "medium", Category: "Average"},
			{Text: "Average of a, a+2, a+4, a+6, a+8 is 22. Find a.", Options: []string{"16", "18", "20", "22"}, CorrectOptionIndex: 1, Solution: "Avg = a+4 = 22. So a = 18", Difficulty: "medium", Category: "Average"},
			{Text: "Average marks of 40 students is 75. Later found one mark was 80 instead of 50. Correct average?", Options: []string{"75.25", "75.5", "75.75", "76"}, CorrectOptionIndex: 2, Solution: "Difference = 30. New avg = 75 + 30/40 = 75.75", Difficulty: "medium", Category: "Average"},
		},
		"Percentage": {
			{Text: "What is 25% of 200?", Options: []string{"40", "50", "60", "75"}, CorrectOptionIndex: 1, Solution: "25% of 200 = 50", Difficulty: "easy", Category: "Percentage"},
			{Text: "40 is what percent of 200?", Options: []string{"15%", "20%", "25%", "30%"}, CorrectOptionIndex: 1, Solution: "(40/200) × 100 = 20%", Difficulty: "easy", Category: "Percentage"},
			{Text: "A number increased by 20% becomes 60. Find the number.", Options: []string{"48", "50", "52", "55"}, CorrectOptionIndex: 1, Solution: "x × 1.2 = 60. x = 50", Difficulty: "easy", Category: "Percentage"},
			{Text: "If price increases 25%, what % should consumption decrease to keep expenditure same?", Options: []string{"20%", "25%", "30%", "33%"}, CorrectOptionIndex: 0, Solution: "Decrease = 25/125 × 100 = 20%", Difficulty: "medium", Category: "Percentage"},
			{Text: "60% of a number is 90. Find the number.", Options: []string{"120", "150", "180", "200"}, CorrectOptionIndex: 1, Solution: "0.6x = 90. x = 150", Difficulty: "easy", Category: "Percentage"},
			{Text: "A increases by 10% then decreases by 10%. Net change?", Options: []string{"-1%", "0%", "+1%", "-2%"}, CorrectOptionIndex: 0, Solution: "1.1 × 0.9 = 0.99 = -1%", Difficulty: "medium", Category: "Percentage"},
			{Text: "Population increases 10000 to 12100 in 2 years. Annual rate?", Options: []string{"10%", "11%", "15%", "20%"}, CorrectOptionIndex: 0, Solution: "10000 × (1+r)² = 12100. r = 10%", Difficulty: "medium", Category: "Percentage"},
			{Text: "75% of 80 equals what percent of 120?", Options: []string{"40%", "50%", "60%", "75%"}, CorrectOptionIndex: 1, Solution: "75% of 80 = 60. 60/120 × 100 = 50%", Difficulty: "medium", Category: "Percentage"},
			{Text: "What is 15% of 300?", Options: []string{"35", "40", "45", "50"}, CorrectOptionIndex: 2, Solution: "15% of 300 = 45", Difficulty: "easy", Category: "Percentage"},
			{Text: "Express 3/4 as a percentage.", Options: []string{"60%", "70%", "75%", "80%"}, CorrectOptionIndex: 2, Solution: "3/4 × 100 = 75%", Difficulty: "easy", Category: "Percentage"},
			{Text: "A bag sold for Rs.100 with 25% profit. Cost price?", Options: []string{"Rs.75", "Rs.80", "Rs.85", "Rs.90"}, CorrectOptionIndex: 1, Solution: "CP = 100/1.25 = 80", Difficulty: "medium", Category: "Percentage"},
			{Text: "What percent is 18 of 90?", Options: []string{"15%", "18%", "20%", "25%"}, CorrectOptionIndex: 2, Solution: "18/90 × 100 = 20%", Difficulty: "easy", Category: "Percentage"},
			{Text: "If 20% of A = 30% of B, then A:B is:", Options: []string{"2:3", "3:2", "4:3", "3:4"}, CorrectOptionIndex: 1, Solution: "0.2A = 0.3B. A/B = 3/2", Difficulty: "medium", Category: "Percentage"},
			{Text: "A salary is increased by 10% then decreased by 10%. Net change?", Options: []string{"No change", "+1%", "-1%", "+10%"}, CorrectOptionIndex: 2, Solution: "1.1 × 0.9 = 0.99 = -1%", Difficulty: "medium", Category: "Percentage"},
			{Text: "Find 33.33% of 99.", Options: []string{"30", "33", "36", "39"}, CorrectOptionIndex: 1, Solution: "1/3 of 99 = 33", Difficulty: "easy", Category: "Percentage"},
			{Text: "20 is increased to 25. Percentage increase?", Options: []string{"20%", "25%", "30%", "50%"}, CorrectOptionIndex: 1, Solution: "Increase = 5/20 × 100 = 25%", Difficulty: "easy", Category: "Percentage"},
			{Text: "If 40% of x = 100, find x.", Options: []string{"200", "250", "300", "400"}, CorrectOptionIndex: 1, Solution: "0.4x = 100. x = 250", Difficulty: "easy", Category: "Percentage"},
			{Text: "Two successive discounts of 20% and 10% equal single discount of:", Options: []string{"28%", "30%", "27%", "25%"}, CorrectOptionIndex: 0, Solution: "Net = 1 - (0.8 × 0.9) = 1 - 0.72 = 28%", Difficulty: "medium", Category: "Percentage"},
			{Text: "Express 0.125 as a percentage.", Options: []string{"1.25%", "12.5%", "125%", "0.125%"}, CorrectOptionIndex: 1, Solution: "0.125 × 100 = 12.5%", Difficulty: "easy", Category: "Percentage"},
			{Text: "If A is 20% more than B, B is what % less than A?", Options: []string{"16.67%", "20%", "25%", "15%"}, CorrectOptionIndex: 0, Solution: "B less = 20/120 × 100 = 16.67%", Difficulty: "medium", Category: "Percentage"},
			{Text: "What is 200% of 50?", Options: []string{"25", "50", "100", "150"}, CorrectOptionIndex: 2, Solution: "200% of 50 = 2 × 50 = 100", Difficulty: "easy", Category: "Percentage"},
		},
		"Time & Work": {
			{Text: "A can do a work in 10 days. Work done in 1 day?", Options: []string{"1/5", "1/10", "1/15", "1/20"}, CorrectOptionIndex: 1, Solution: "Work per day = 1/10", Difficulty: "easy", Category: "Time & Work"},
			{Text: "A can do work in 10 days, B in 15 days. Together?", Options: []string{"5 days", "6 days", "7 days", "8 days"}, CorrectOptionIndex: 1, Solution: "Combined = 1/10 + 1/15 = 1/6. Days = 6", Difficulty: "medium", Category: "Time & Work"},
			{Text: "A is twice as efficient as B. A takes 12 days. B takes?", Options: []string{"18", "20", "24", "30"}, CorrectOptionIndex: 2, Solution: "B takes 2 × 12 = 24 days", Difficulty: "easy", Category: "Time & Work"},
			{Text: "10 men can do work in 15 days. How many men for 10 days?", Options: []string{"12", "15", "18", "20"}, CorrectOptionIndex: 1, Solution: "Men × Days = constant. 10×15 = x×10. x = 15", Difficulty: "medium", Category: "Time & Work"},
			{Text: "A and B together in 6 days. A alone in 10 days. B alone?", Options: []string{"12 days", "15 days", "18 days", "20 days"}, CorrectOptionIndex: 1, Solution: "1/6 - 1/10 = 1/15. B = 15 days", Difficulty: "medium", Category: "Time & Work"},
			{Text: "A can complete 1/3 of work in 5 days. Full work in?", Options: []string{"10", "12", "15", "18"}, CorrectOptionIndex: 2, Solution: "Full work = 5 × 3 = 15 days", Difficulty: "easy", Category: "Time & Work"},
			{Text: "6 workers complete job in 8 days. 4 workers take?", Options: []string{"10", "12", "14", "16"}, CorrectOptionIndex: 1, Solution: "6×8 = 4×x. x = 12 days", Difficulty: "easy", Category: "Time & Work"},
			{Text: "A does half work in 8 days. Full work in?", Options: []string{"12", "14", "16", "18"}, CorrectOptionIndex: 2, Solution: "Full = 8 × 2 = 16 days", Difficulty: "easy", Category: "Time & Work"},
			{Text: "A works 2x as fast as B. Together in 12 days. A alone?", Options: []string{"16", "18", "20", "24"}, CorrectOptionIndex: 1, Solution: "A = 2B. (A+B)/work = 3B = 1/12. A = 2/36. A alone = 18", Difficulty: "hard", Category: "Time & Work"},
			{Text: "If 4 men or 6 women can do work in 12 days, 2 men and 3 women take?", Options: []string{"10", "12", "14", "16"}, CorrectOptionIndex: 1, Solution: "2M+3W = 1M+3W+1M = work of (3+3)=6W or 4M in 12 days", Difficulty: "hard", Category: "Time & Work"},
			{Text: "A can do work in 20 days. Work done in 4 days?", Options: []string{"1/4", "1/5", "4/5", "1/20"}, CorrectOptionIndex: 1, Solution: "Work = 4/20 = 1/5", Difficulty: "easy", Category: "Time & Work"},
			{Text: "A takes 6 days, B takes 12 days. Together?", Options: []string{"3", "4", "5", "6"}, CorrectOptionIndex: 1, Solution: "1/6 + 1/12 = 3/12 = 1/4. Together = 4 days", Difficulty: "easy", Category: "Time & Work"},
			{Text: "Work done by A in 1 day = 1/8. Days to complete?", Options: []string{"6", "8", "10", "12"}, CorrectOptionIndex: 1, Solution: "Total days = 1/(1/8) = 8", Difficulty: "easy", Category: "Time & Work"},
			{Text: "15 men do work in 20 days. After 10 days, 5 leave. Total days?", Options: []string{"25", "30", "35", "28"}, CorrectOptionIndex: 1, Solution: "Work done = 1/2. Remaining = 1/2 by 10 men = 10 days. Total = 30", Difficulty: "medium", Category: "Time & Work"},
			{Text: "A is 3x efficient as B. Together in 15 days. A alone?", Options: []string{"18", "20", "24", "30"}, CorrectOptionIndex: 1, Solution: "A+B = 4B = 1/15. A = 3/60. A alone = 20 days", Difficulty: "medium", Category: "Time & Work"},
			{Text: "20 men can do work in 25 days. 25 men take?", Options: []string{"18", "20", "22", "24"}, CorrectOptionIndex: 1, Solution: "20×25 = 25×x. x = 20 days", Difficulty: "easy", Category: "Time & Work"},
			{Text: "A does 1/3 work in 10 days. B does 2/3 in 20 days. Together?", Options: []string{"12", "15", "18", "20"}, CorrectOptionIndex: 1, Solution: "A = 30 days, B = 30 days. Together = 15 days", Difficulty: "medium", Category: "Time & Work"},
			{Text: "Pipe A fills in 6 hrs, B empties in 8 hrs. Both open, fill in?", Options: []string{"20", "24", "28", "32"}, CorrectOptionIndex: 1, Solution: "Net = 1/6 - 1/8 = 1/24. Time = 24 hrs", Difficulty: "medium", Category: "Time & Work"},
			{Text: "A can do in 10 days, B in 15, C in 20. All together?", Options: []string{"4.6", "5", "5.5", "6"}, CorrectOptionIndex: 0, Solution: "1/10+1/15+1/20 = 13/60. Days = 60/13 ≈ 4.6", Difficulty: "medium", Category: "Time & Work"},
			{Text: "If 8 men finish in 12 days working 6 hrs/day, 6 men working 8 hrs/day finish in?", Options: []string{"10", "12", "14", "16"}, CorrectOptionIndex: 1, Solution: "8×12×6 = 6×x×8. x = 12 days", Difficulty: "medium", Category: "Time & Work"},
			{Text: "A takes 20% less time than B for same work. If B takes 25 days, A takes?", Options: []string{"18", "20", "22", "24"}, CorrectOptionIndex: 1, Solution: "A = 25 × 0.8 = 20 days", Difficulty: "easy", Category: "Time & Work"},
		},
		"General Aptitude": {
			{Text: "If 5 + 3 = 8, what is 15 + 9?", Options: []string{"22", "24", "26", "28"}, CorrectOptionIndex: 1, Solution: "15 + 9 = 24", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "What comes next: 2, 4, 8, 16, ?", Options: []string{"20", "24", "32", "64"}, CorrectOptionIndex: 2, Solution: "Pattern: ×2. Next = 32", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "If 6 pens cost Rs. 30, how much do 10 pens cost?", Options: []string{"Rs. 40", "Rs. 50", "Rs. 60", "Rs. 100"}, CorrectOptionIndex: 1, Solution: "Cost = (30/6) × 10 = 50", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "A is 2 yrs older than B. B is 3 yrs older than C. A is how many yrs older than C?", Options: []string{"4", "5", "6", "7"}, CorrectOptionIndex: 1, Solution: "A - C = 2 + 3 = 5 years", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "Find the odd one out: 2, 5, 10, 17, 28", Options: []string{"2", "5", "17", "28"}, CorrectOptionIndex: 3, Solution: "Pattern: +3, +5, +7, +9. 17+9=26, not 28", Difficulty: "medium", Category: "General Aptitude"},
			{Text: "Complete: 1, 1, 2, 3, 5, 8, ?", Options: []string{"10", "11", "12", "13"}, CorrectOptionIndex: 3, Solution: "Fibonacci: 5+8=13", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "If 20% of a number is 30, what is 50% of that number?", Options: []string{"60", "75", "90", "100"}, CorrectOptionIndex: 1, Solution: "Number = 150. 50% of 150 = 75", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "A clock shows 3:15. Angle between hands?", Options: []string{"0°", "7.5°", "15°", "30°"}, CorrectOptionIndex: 1, Solution: "Hour at 97.5°, Min at 90°. Diff = 7.5°", Difficulty: "medium", Category: "General Aptitude"},
			{Text: "If APPLE = 50, what is CAT?", Options: []string{"24", "27", "30", "33"}, CorrectOptionIndex: 0, Solution: "C=3, A=1, T=20. Sum = 24", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "Find next: 3, 6, 11, 18, ?", Options: []string{"25", "27", "29", "31"}, CorrectOptionIndex: 1, Solution: "Pattern: +3, +5, +7, +9. Next = 27", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "If A = 1, B = 2, what is Z?", Options: []string{"24", "25", "26", "27"}, CorrectOptionIndex: 2, Solution: "Z is 26th letter = 26", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "What day comes 3 days after Monday?", Options: []string{"Wednesday", "Thursday", "Friday", "Saturday"}, CorrectOptionIndex: 1, Solution: "Mon → Tue → Wed → Thu", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "7 × 8 + 9 × 3 = ?", Options: []string{"72", "83", "85", "89"}, CorrectOptionIndex: 1, Solution: "56 + 27 = 83", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "If 100 - x = 45, find x.", Options: []string{"45", "50", "55", "65"}, CorrectOptionIndex: 2, Solution: "x = 100 - 45 = 55", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "Square of 15 is?", Options: []string{"215", "225", "235", "245"}, CorrectOptionIndex: 1, Solution: "15² = 225", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "What is 1/4 of 100?", Options: []string{"20", "25", "30", "40"}, CorrectOptionIndex: 1, Solution: "100/4 = 25", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "If pen:write, then knife:?", Options: []string{"cut", "sharp", "metal", "kitchen"}, CorrectOptionIndex: 0, Solution: "Pen is used to write, knife to cut", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "How many seconds in 5 minutes?", Options: []string{"200", "250", "300", "350"}, CorrectOptionIndex: 2, Solution: "5 × 60 = 300", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "Find: 12 + 24 + 36 + 48", Options: []string{"100", "110", "120", "130"}, CorrectOptionIndex: 2, Solution: "Sum = 120", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "If 3x = 27, x = ?", Options: []string{"6", "7", "8", "9"}, CorrectOptionIndex: 3, Solution: "x = 27/3 = 9", Difficulty: "easy", Category: "General Aptitude"},
			{Text: "Complete: 100, 95, 90, 85, ?", Options: []string{"75", "78", "80", "82"}, CorrectOptionIndex: 2, Solution: "Pattern: -5. Next = 80", Difficulty: "easy", Category: "General Aptitude"},
		},
	}
}
